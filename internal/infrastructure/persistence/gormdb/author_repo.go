package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/libraryapi/internal/domain/author"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrAuthorNameDuplicate
		}
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// FindByIDWithBooks 预加载作者参与的图书（按图书ID升序）
func (r *authorRepository) FindByIDWithBooks(ctx context.Context, id uint) (*author.Author, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var books []BookModel
	err = getDB(ctx, r.db).
		Joins("JOIN author_books ON author_books.book_id = books.id").
		Where("author_books.author_id = ?", id).
		Order("books.id ASC").
		Find(&books).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}

	a.Books = make([]author.BookSummary, len(books))
	for i, b := range books {
		a.Books[i] = author.BookSummary{ID: b.ID, Title: b.Title}
	}
	return a, nil
}

func (r *authorRepository) List(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) SearchByName(ctx context.Context, keyword string) ([]*author.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).
		Where("name LIKE ? ESCAPE '!'", "%"+escapeLike(keyword)+"%").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索作者失败")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := getDB(ctx, r.db).Model(&AuthorModel{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

func (r *authorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := getDB(ctx, r.db).Model(&AuthorModel{ID: a.ID}).Update("name", a.Name)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return author.ErrAuthorNameDuplicate
		}
		return apperrors.Wrap(result.Error, "更新作者失败")
	}
	return nil
}

// Delete 先删除作者的全部图书关联，再删除作者
// 调用方应在事务中执行，并对受影响的图书重新编号
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	if err := db.Where("author_id = ?", id).Delete(&AuthorBookModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除作者图书关联失败")
	}

	result := db.Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// FindExistingIDs 一次IN查询返回存在的ID
func (r *authorRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}
	if err := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return found, nil
}

func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toAuthorEntities(models []AuthorModel) []*author.Author {
	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors
}
