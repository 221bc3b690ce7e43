package author

import (
	"context"
)

// Repository 作者仓储接口
// 实现位于infrastructure/persistence/gormdb
type Repository interface {
	// Create 创建作者，姓名重复时返回ErrAuthorNameDuplicate
	Create(ctx context.Context, author *Author) error

	// FindByID 查询作者，不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDWithBooks 查询作者并填充Books
	FindByIDWithBooks(ctx context.Context, id uint) (*Author, error)

	// List 全部作者，按ID升序
	List(ctx context.Context) ([]*Author, error)

	// SearchByName 姓名包含关键字的作者
	SearchByName(ctx context.Context, keyword string) ([]*Author, error)

	// ExistsByName 是否存在同名作者（excludeID用于更新时排除自身，0表示不排除）
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	Exists(ctx context.Context, id uint) (bool, error)

	// Update 更新姓名，姓名重复时返回ErrAuthorNameDuplicate
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者及其全部图书关联，不存在返回ErrAuthorNotFound
	Delete(ctx context.Context, id uint) error

	// FindExistingIDs 返回ids中实际存在的作者ID（一次集合查询）
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}
