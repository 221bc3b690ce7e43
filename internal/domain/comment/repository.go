package comment

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	Create(ctx context.Context, comment *Comment) error

	// FindByID 不存在返回ErrCommentNotFound
	FindByID(ctx context.Context, id uint) (*Comment, error)

	// ListByBook 图书的全部评论，按ID升序
	ListByBook(ctx context.Context, bookID uint) ([]*Comment, error)

	// Update 只更新内容
	Update(ctx context.Context, comment *Comment) error
}

// BookChecker 评论服务校验图书存在性所需的能力（由图书仓储实现）
type BookChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}
