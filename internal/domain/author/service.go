package author

import (
	"context"
	"strings"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/rules"
)

// Service 作者领域服务
type Service interface {
	CreateAuthor(ctx context.Context, name string) (*Author, error)
	GetAuthor(ctx context.Context, id uint) (*Author, error)
	ListAuthors(ctx context.Context) ([]*Author, error)
	SearchAuthors(ctx context.Context, keyword string) ([]*Author, error)
	UpdateAuthor(ctx context.Context, id uint, name string) error
	DeleteAuthor(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建作者服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
// 业务规则：
// 1. 姓名通过字段校验
// 2. 不允许同名作者（预检查给出友好错误，唯一索引兜底并发插入）
func (s *service) CreateAuthor(ctx context.Context, name string) (*Author, error) {
	a := NewAuthor(name)
	if err := validate(a); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAuthorNameDuplicate
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByIDWithBooks(ctx, id)
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}

func (s *service) SearchAuthors(ctx context.Context, keyword string) ([]*Author, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptySearchName
	}
	return s.repo.SearchByName(ctx, keyword)
}

// UpdateAuthor 全量更新作者（当前只有姓名）
func (s *service) UpdateAuthor(ctx context.Context, id uint, name string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Rename(name)
	if err := validate(a); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrAuthorNameDuplicate
	}

	return s.repo.Update(ctx, a)
}

// DeleteAuthor 删除作者
// 受影响图书的作者顺序需要由调用方在同一事务内重新编号
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validate(a *Author) error {
	err := a.Validate()
	if err == nil {
		return nil
	}
	if fields, ok := rules.FieldMessages(err); ok {
		return apperrors.NewValidation(fields)
	}
	return apperrors.Wrap(err, "作者校验失败")
}
