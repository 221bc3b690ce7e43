package book

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

// ReplaceBookUseCase 全量替换图书（PUT）
// 旧的作者关联全部删除后按新顺序插入
type ReplaceBookUseCase struct {
	bookService book.Service
	txManager   *gormdb.TxManager
	publisher   event.Publisher
}

func NewReplaceBookUseCase(bookService book.Service, txManager *gormdb.TxManager, publisher event.Publisher) *ReplaceBookUseCase {
	return &ReplaceBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		publisher:   publisher,
	}
}

type ReplaceBookRequest struct {
	ID              uint
	Title           string
	PublicationDate *time.Time
	AuthorIDs       []uint
}

func (uc *ReplaceBookUseCase) Execute(ctx context.Context, req ReplaceBookRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReplaceBook")
	defer func() { tracing.EndSpan(span, err) }()

	var updated *book.Book
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.ReplaceBook(ctx, req.ID, req.Title, req.PublicationDate, req.AuthorIDs)
		updated = b
		return err
	})
	if err != nil {
		return err
	}

	event.Emit(ctx, uc.publisher, event.BookUpdated, event.BookUpdatedPayload{BookID: updated.ID, Title: updated.Title, Mode: event.ModeReplace})
	return nil
}

// PatchBookUseCase 局部更新图书（PATCH，RFC 6902 JSON Patch）
// 只允许修改title和publication_date；文档非法或校验失败时不写入
type PatchBookUseCase struct {
	bookService book.Service
	txManager   *gormdb.TxManager
	publisher   event.Publisher
}

func NewPatchBookUseCase(bookService book.Service, txManager *gormdb.TxManager, publisher event.Publisher) *PatchBookUseCase {
	return &PatchBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		publisher:   publisher,
	}
}

type PatchBookRequest struct {
	ID       uint
	Document []byte
}

func (uc *PatchBookUseCase) Execute(ctx context.Context, req PatchBookRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PatchBook")
	defer func() {
		metrics.IncCounterVec(metrics.BookPatchesTotal, map[string]string{"result": patchResult(err)})
		tracing.EndSpan(span, err)
	}()

	var patched *book.Book
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.PatchBook(ctx, req.ID, req.Document)
		patched = b
		return err
	})
	if err != nil {
		return err
	}

	event.Emit(ctx, uc.publisher, event.BookUpdated, event.BookUpdatedPayload{BookID: patched.ID, Title: patched.Title, Mode: event.ModePatch})
	return nil
}

func patchResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, book.ErrInvalidPatch), errors.Is(err, apperrors.ErrValidation):
		return metrics.ResultInvalid
	default:
		return metrics.ResultFailure
	}
}
