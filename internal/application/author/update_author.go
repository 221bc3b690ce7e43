package author

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

// UpdateAuthorUseCase 全量更新作者
type UpdateAuthorUseCase struct {
	authorService author.Service
	txManager     *gormdb.TxManager
}

func NewUpdateAuthorUseCase(authorService author.Service, txManager *gormdb.TxManager) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorService: authorService, txManager: txManager}
}

type UpdateAuthorRequest struct {
	ID   uint
	Name string
}

func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	return uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.authorService.UpdateAuthor(ctx, req.ID, req.Name)
	})
}
