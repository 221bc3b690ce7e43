package comment

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/comment"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/tracing"
)

const tracerName = "application/comment"

// CommentItem 评论响应
type CommentItem struct {
	ID        uint      `json:"id"`
	BookID    uint      `json:"book_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toItem(c *comment.Comment) CommentItem {
	return CommentItem{ID: c.ID, BookID: c.BookID, UserID: c.UserID, Content: c.Content, CreatedAt: c.CreatedAt}
}

// AddCommentUseCase 发表评论
// UserID来自认证中间件，不接受请求体指定
type AddCommentUseCase struct {
	commentService comment.Service
	txManager      *gormdb.TxManager
	publisher      event.Publisher
}

func NewAddCommentUseCase(commentService comment.Service, txManager *gormdb.TxManager, publisher event.Publisher) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentService: commentService,
		txManager:      txManager,
		publisher:      publisher,
	}
}

type AddCommentRequest struct {
	BookID  uint
	UserID  uint
	Content string
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, req AddCommentRequest) (_ *CommentItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddComment")
	defer func() { tracing.EndSpan(span, err) }()

	var created *comment.Comment
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		c, err := uc.commentService.AddComment(ctx, req.BookID, req.UserID, req.Content)
		created = c
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.CommentsCreatedTotal)
	event.Emit(ctx, uc.publisher, event.CommentCreated, event.CommentCreatedPayload{
		CommentID: created.ID,
		BookID:    created.BookID,
		UserID:    created.UserID,
	})

	item := toItem(created)
	return &item, nil
}

// QueryCommentsUseCase 评论列表和详情（匿名可访问）
type QueryCommentsUseCase struct {
	commentService comment.Service
}

func NewQueryCommentsUseCase(commentService comment.Service) *QueryCommentsUseCase {
	return &QueryCommentsUseCase{commentService: commentService}
}

// List 图书的全部评论，图书不存在返回404
func (uc *QueryCommentsUseCase) List(ctx context.Context, bookID uint) (_ []CommentItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListComments")
	defer func() { tracing.EndSpan(span, err) }()

	comments, err := uc.commentService.ListComments(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return lo.Map(comments, func(c *comment.Comment, _ int) CommentItem { return toItem(c) }), nil
}

func (uc *QueryCommentsUseCase) Get(ctx context.Context, bookID, id uint) (_ *CommentItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetComment")
	defer func() { tracing.EndSpan(span, err) }()

	c, err := uc.commentService.GetComment(ctx, bookID, id)
	if err != nil {
		return nil, err
	}
	item := toItem(c)
	return &item, nil
}

// UpdateCommentUseCase 修改评论，只有发表者可以修改
type UpdateCommentUseCase struct {
	commentService comment.Service
	txManager      *gormdb.TxManager
}

func NewUpdateCommentUseCase(commentService comment.Service, txManager *gormdb.TxManager) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{commentService: commentService, txManager: txManager}
}

type UpdateCommentRequest struct {
	BookID  uint
	ID      uint
	UserID  uint
	Content string
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, req UpdateCommentRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateComment")
	defer func() { tracing.EndSpan(span, err) }()

	return uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.commentService.UpdateComment(ctx, req.BookID, req.ID, req.UserID, req.Content)
	})
}
