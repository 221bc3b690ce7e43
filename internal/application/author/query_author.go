package author

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

// GetAuthorUseCase 作者详情
type GetAuthorUseCase struct {
	authorService author.Service
}

func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (_ *AuthorDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	a, err := uc.authorService.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetail(a), nil
}

// ListAuthorsUseCase 作者列表与姓名搜索
type ListAuthorsUseCase struct {
	authorService author.Service
}

func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

func (uc *ListAuthorsUseCase) Execute(ctx context.Context) (_ []AuthorItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListAuthors")
	defer func() { tracing.EndSpan(span, err) }()

	authors, err := uc.authorService.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return toItems(authors), nil
}

// Search 按姓名包含搜索，关键字为空返回ErrEmptySearchName
func (uc *ListAuthorsUseCase) Search(ctx context.Context, keyword string) (_ []AuthorItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "SearchAuthors")
	defer func() { tracing.EndSpan(span, err) }()

	authors, err := uc.authorService.SearchAuthors(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toItems(authors), nil
}
