package author

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

// DeleteAuthorUseCase 删除作者
// 流程（同一事务）：
// 1. 记下作者参与的图书
// 2. 删除作者及其关联
// 3. 把这些图书剩余的作者关联重新编号为0..n-1
type DeleteAuthorUseCase struct {
	authorService author.Service
	bookService   book.Service
	txManager     *gormdb.TxManager
	publisher     event.Publisher
}

func NewDeleteAuthorUseCase(
	authorService author.Service,
	bookService book.Service,
	txManager *gormdb.TxManager,
	publisher event.Publisher,
) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorService: authorService,
		bookService:   bookService,
		txManager:     txManager,
		publisher:     publisher,
	}
}

func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	var bookIDs []uint
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		ids, err := uc.bookService.BookIDsByAuthor(ctx, id)
		if err != nil {
			return err
		}
		if err := uc.authorService.DeleteAuthor(ctx, id); err != nil {
			return err
		}
		bookIDs = ids
		return uc.bookService.CompactAuthorLinks(ctx, ids)
	})
	if err != nil {
		return err
	}

	metrics.IncCounter(metrics.AuthorsDeletedTotal)
	event.Emit(ctx, uc.publisher, event.AuthorDeleted, event.AuthorDeletedPayload{AuthorID: id, BookIDs: bookIDs})
	return nil
}
