package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/libraryapi/internal/domain/book"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 插入图书后再插入关联（需要先拿到自增ID）
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)

	model := &BookModel{
		Title:           b.Title,
		PublicationDate: b.PublicationDate,
	}
	if err := db.Omit("AuthorLinks").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	for i := range b.Authors {
		b.Authors[i].BookID = model.ID
	}
	if err := insertLinks(db, b.Authors); err != nil {
		return err
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByIDWithAuthors 预加载关联和作者，关联按sort_order升序
func (r *bookRepository) FindByIDWithAuthors(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Preload("AuthorLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("AuthorLinks.Author").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	b := toBookEntity(&model)
	b.Authors = toLinkEntities(model.AuthorLinks)
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 只更新标量字段；使用map保证publication_date可以被置为NULL
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := getDB(ctx, r.db).Model(&BookModel{ID: b.ID}).Updates(map[string]interface{}{
		"title":            b.Title,
		"publication_date": b.PublicationDate,
	}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// ReplaceAuthors 整体替换关联
func (r *bookRepository) ReplaceAuthors(ctx context.Context, bookID uint, links []book.AuthorLink) error {
	db := getDB(ctx, r.db)

	if err := db.Where("book_id = ?", bookID).Delete(&AuthorBookModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除图书作者关联失败")
	}
	return insertLinks(db, links)
}

func (r *bookRepository) FindAuthorLinks(ctx context.Context, bookID uint) ([]book.AuthorLink, error) {
	var models []AuthorBookModel
	err := getDB(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("sort_order ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书作者关联失败")
	}
	return toLinkEntities(models), nil
}

func (r *bookRepository) FindBookIDsByAuthor(ctx context.Context, authorID uint) ([]uint, error) {
	ids := []uint{}
	err := getDB(ctx, r.db).
		Model(&AuthorBookModel{}).
		Where("author_id = ?", authorID).
		Order("book_id ASC").
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}
	return ids, nil
}

func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

func insertLinks(db *gorm.DB, links []book.AuthorLink) error {
	if len(links) == 0 {
		return nil
	}

	models := make([]AuthorBookModel, len(links))
	for i, l := range links {
		models[i] = AuthorBookModel{AuthorID: l.AuthorID, BookID: l.BookID, SortOrder: l.Order}
	}
	if err := db.Create(&models).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrDuplicateAuthorIDs
		}
		return apperrors.Wrap(err, "保存图书作者关联失败")
	}
	return nil
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		PublicationDate: model.PublicationDate,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toLinkEntities(models []AuthorBookModel) []book.AuthorLink {
	links := make([]book.AuthorLink, len(models))
	for i, m := range models {
		links[i] = book.AuthorLink{AuthorID: m.AuthorID, BookID: m.BookID, Order: m.SortOrder}
		if m.Author != nil {
			links[i].AuthorName = m.Author.Name
		}
	}
	return links
}
