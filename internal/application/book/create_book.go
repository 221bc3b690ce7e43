package book

import (
	"context"
	"time"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

const tracerName = "application/book"

// CreateBookUseCase 创建图书
// 作者存在性检查、图书插入、关联插入在同一事务内；任何一步失败都不留下数据
type CreateBookUseCase struct {
	bookService book.Service
	txManager   *gormdb.TxManager
	publisher   event.Publisher
}

func NewCreateBookUseCase(bookService book.Service, txManager *gormdb.TxManager, publisher event.Publisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// CreateBookRequest AuthorIDs的顺序即署名顺序
type CreateBookRequest struct {
	Title           string
	PublicationDate *time.Time
	AuthorIDs       []uint
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (_ *BookDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateBook")
	defer func() { tracing.EndSpan(span, err) }()

	var created *book.Book
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.CreateBook(ctx, req.Title, req.PublicationDate, req.AuthorIDs)
		if err != nil {
			return err
		}
		// 重新读取以填充作者姓名
		created, err = uc.bookService.GetBook(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	event.Emit(ctx, uc.publisher, event.BookCreated, event.BookCreatedPayload{
		BookID:    created.ID,
		Title:     created.Title,
		AuthorIDs: book.AuthorIDs(created.Authors),
	})

	return toDetail(created), nil
}
