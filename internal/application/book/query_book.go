package book

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

// GetBookUseCase 图书详情（作者按署名顺序）
type GetBookUseCase struct {
	bookService book.Service
}

func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (_ *BookDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBook")
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetail(b), nil
}

type ListBooksUseCase struct {
	bookService book.Service
}

func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context) (_ []BookItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return toItems(books), nil
}
