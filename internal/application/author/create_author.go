package author

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

const tracerName = "application/author"

// CreateAuthorUseCase 创建作者用例
// 同名检查和插入在同一事务内执行，提交后发布author.created
type CreateAuthorUseCase struct {
	authorService author.Service
	txManager     *gormdb.TxManager
	publisher     event.Publisher
}

// NewCreateAuthorUseCase 创建用例
func NewCreateAuthorUseCase(authorService author.Service, txManager *gormdb.TxManager, publisher event.Publisher) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{
		authorService: authorService,
		txManager:     txManager,
		publisher:     publisher,
	}
}

// CreateAuthorRequest 创建请求
type CreateAuthorRequest struct {
	Name string
}

func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (_ *AuthorItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	var created *author.Author
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		a, err := uc.authorService.CreateAuthor(ctx, req.Name)
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.AuthorsCreatedTotal)
	event.Emit(ctx, uc.publisher, event.AuthorCreated, event.AuthorCreatedPayload{AuthorID: created.ID, Name: created.Name})

	return &AuthorItem{ID: created.ID, Name: created.Name}, nil
}
