package comment

import (
	"context"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/rules"
)

// Service 评论领域服务
type Service interface {
	AddComment(ctx context.Context, bookID, userID uint, content string) (*Comment, error)
	ListComments(ctx context.Context, bookID uint) ([]*Comment, error)
	GetComment(ctx context.Context, bookID, id uint) (*Comment, error)
	UpdateComment(ctx context.Context, bookID, id, userID uint, content string) error
}

type service struct {
	repo  Repository
	books BookChecker
}

// NewService 创建评论服务
func NewService(repo Repository, books BookChecker) Service {
	return &service{repo: repo, books: books}
}

// AddComment 发表评论，图书必须存在
func (s *service) AddComment(ctx context.Context, bookID, userID uint, content string) (*Comment, error) {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return nil, err
	}

	c := NewComment(bookID, userID, content)
	if err := validate(c); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListComments(ctx context.Context, bookID uint) ([]*Comment, error) {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListByBook(ctx, bookID)
}

// GetComment 查询评论，评论不属于该图书时视为不存在
func (s *service) GetComment(ctx context.Context, bookID, id uint) (*Comment, error) {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.findInBook(ctx, bookID, id)
}

// UpdateComment 修改评论
// 业务规则：
// 1. 图书和评论都必须存在，且评论属于该图书
// 2. 只有发表者本人可以修改，UserID保持不变
func (s *service) UpdateComment(ctx context.Context, bookID, id, userID uint, content string) error {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return err
	}

	c, err := s.findInBook(ctx, bookID, id)
	if err != nil {
		return err
	}
	if !c.IsWrittenBy(userID) {
		return ErrNotCommentAuthor
	}

	c.Edit(content)
	if err := validate(c); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

func (s *service) ensureBook(ctx context.Context, bookID uint) error {
	exists, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}
	return nil
}

func (s *service) findInBook(ctx context.Context, bookID, id uint) (*Comment, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.BelongsTo(bookID) {
		return nil, ErrCommentNotFound
	}
	return c, nil
}

func validate(c *Comment) error {
	err := c.Validate()
	if err == nil {
		return nil
	}
	if fields, ok := rules.FieldMessages(err); ok {
		return apperrors.NewValidation(fields)
	}
	return apperrors.Wrap(err, "评论校验失败")
}
