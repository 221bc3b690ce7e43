package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/libraryapi/internal/domain/comment"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := &CommentModel{
		Content: c.Content,
		BookID:  c.BookID,
		UserID:  c.UserID,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model CommentModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}
	return toCommentEntity(&model), nil
}

func (r *commentRepository) ListByBook(ctx context.Context, bookID uint) ([]*comment.Comment, error) {
	var models []CommentModel
	if err := getDB(ctx, r.db).Where("book_id = ?", bookID).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments, nil
}

// Update 只更新内容，book_id和user_id保持不变
func (r *commentRepository) Update(ctx context.Context, c *comment.Comment) error {
	result := getDB(ctx, r.db).Model(&CommentModel{ID: c.ID}).Update("content", c.Content)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评论失败")
	}
	return nil
}

func toCommentEntity(model *CommentModel) *comment.Comment {
	return &comment.Comment{
		ID:        model.ID,
		Content:   model.Content,
		BookID:    model.BookID,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
