package book

import (
	"context"
)

// Repository 图书仓储接口
type Repository interface {
	// Create 插入图书及其作者关联，完成后回填ID和关联的BookID
	Create(ctx context.Context, book *Book) error

	// FindByID 只查询图书标量字段，不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDWithAuthors 查询图书及作者关联（按Order升序，填充AuthorName）
	FindByIDWithAuthors(ctx context.Context, id uint) (*Book, error)

	// List 全部图书，按ID升序，不含作者
	List(ctx context.Context) ([]*Book, error)

	// Update 更新标量字段（书名、出版日期）
	Update(ctx context.Context, book *Book) error

	// ReplaceAuthors 删除图书的全部作者关联后插入links，不做差量比较
	ReplaceAuthors(ctx context.Context, bookID uint, links []AuthorLink) error

	// FindAuthorLinks 图书当前的作者关联，按Order升序
	FindAuthorLinks(ctx context.Context, bookID uint) ([]AuthorLink, error)

	// FindBookIDsByAuthor 作者参与的全部图书ID
	FindBookIDsByAuthor(ctx context.Context, authorID uint) ([]uint, error)

	Exists(ctx context.Context, id uint) (bool, error)
}

// AuthorDirectory 图书服务校验作者存在性所需的能力
// 由作者仓储实现，避免book包依赖author包
type AuthorDirectory interface {
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}
