package book

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/patch"
	"github.com/xiebiao/libraryapi/pkg/rules"
)

// Service 图书领域服务
// 写操作需要调用方放在同一个事务中执行（存在性检查、关联替换、保存一起提交或回滚）
type Service interface {
	CreateBook(ctx context.Context, title string, publicationDate *time.Time, authorIDs []uint) (*Book, error)
	GetBook(ctx context.Context, id uint) (*Book, error)
	ListBooks(ctx context.Context) ([]*Book, error)
	ReplaceBook(ctx context.Context, id uint, title string, publicationDate *time.Time, authorIDs []uint) (*Book, error)
	PatchBook(ctx context.Context, id uint, document []byte) (*Book, error)
	Exists(ctx context.Context, id uint) (bool, error)

	// BookIDsByAuthor 作者参与的图书
	BookIDsByAuthor(ctx context.Context, authorID uint) ([]uint, error)
	// CompactAuthorLinks 按现有顺序把图书的作者关联重新编号为0..n-1（删除作者后调用）
	CompactAuthorLinks(ctx context.Context, bookIDs []uint) error
}

type service struct {
	repo    Repository
	authors AuthorDirectory
}

// NewService 创建图书服务
func NewService(repo Repository, authors AuthorDirectory) Service {
	return &service{repo: repo, authors: authors}
}

// CreateBook 创建图书
// 业务规则：
// 1. 书名通过字段校验
// 2. 至少一个作者，作者ID不重复且全部存在（任何一个不满足都不写入）
// 3. 作者顺序即提交顺序
func (s *service) CreateBook(ctx context.Context, title string, publicationDate *time.Time, authorIDs []uint) (*Book, error) {
	b := NewBook(title, publicationDate, authorIDs)
	if err := validate(b); err != nil {
		return nil, err
	}

	if err := s.ensureAuthors(ctx, authorIDs); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByIDWithAuthors(ctx, id)
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// ReplaceBook 全量替换图书（PUT）
// 旧的作者关联全部丢弃，按新提交顺序重新编号
func (s *service) ReplaceBook(ctx context.Context, id uint, title string, publicationDate *time.Time, authorIDs []uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Replace(title, publicationDate, authorIDs)
	if err := validate(b); err != nil {
		return nil, err
	}

	if err := s.ensureAuthors(ctx, authorIDs); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAuthors(ctx, b.ID, b.Authors); err != nil {
		return nil, err
	}
	return b, nil
}

// PatchBook 局部更新图书（PATCH）
// 先在视图上应用并校验，全部通过后才合并回实体保存
func (s *service) PatchBook(ctx context.Context, id uint, document []byte) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := patch.Apply(ToPatchView(b), document)
	if err != nil {
		return nil, patchError(err)
	}

	view.MergeInto(b)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) BookIDsByAuthor(ctx context.Context, authorID uint) ([]uint, error) {
	return s.repo.FindBookIDsByAuthor(ctx, authorID)
}

func (s *service) CompactAuthorLinks(ctx context.Context, bookIDs []uint) error {
	for _, bookID := range bookIDs {
		links, err := s.repo.FindAuthorLinks(ctx, bookID)
		if err != nil {
			return err
		}
		if err := s.repo.ReplaceAuthors(ctx, bookID, AssignOrder(links)); err != nil {
			return err
		}
	}
	return nil
}

// ensureAuthors 校验作者列表：非空、不重复、全部存在
// 存在性通过一次集合查询完成，比较提交数量与查到数量
func (s *service) ensureAuthors(ctx context.Context, authorIDs []uint) error {
	if len(authorIDs) == 0 {
		return ErrNoAuthors
	}
	if len(lo.Uniq(authorIDs)) != len(authorIDs) {
		return ErrDuplicateAuthorIDs
	}

	existing, err := s.authors.FindExistingIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	if len(existing) != len(authorIDs) {
		missing, _ := lo.Difference(authorIDs, existing)
		return ErrAuthorNotExist.WithDetails(map[string]interface{}{"missing_author_ids": missing})
	}
	return nil
}

func validate(b *Book) error {
	err := b.Validate()
	if err == nil {
		return nil
	}
	if fields, ok := rules.FieldMessages(err); ok {
		return apperrors.NewValidation(fields)
	}
	return apperrors.Wrap(err, "图书校验失败")
}

func patchError(err error) error {
	var verrs patch.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return apperrors.NewValidation(verrs)
	case errors.Is(err, patch.ErrNoSuchField), errors.Is(err, patch.ErrInvalidDocument):
		return ErrInvalidPatch.WithDetails(map[string]string{"patch": err.Error()})
	default:
		return apperrors.Wrap(err, "应用Patch失败")
	}
}
