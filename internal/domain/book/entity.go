package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/libraryapi/pkg/rules"
)

// TitleMaxLength 书名最大长度（按字符计）
const TitleMaxLength = 250

// Book 图书实体（聚合根）
// Authors是聚合内的有序作者关联，整体替换，不做增量修改
type Book struct {
	ID              uint
	Title           string
	PublicationDate *time.Time
	Authors         []AuthorLink
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建图书（工厂方法）
// 作者关联在入库后才能拿到BookID，由仓储补齐
func NewBook(title string, publicationDate *time.Time, authorIDs []uint) *Book {
	now := time.Now()
	return &Book{
		Title:           title,
		PublicationDate: publicationDate,
		Authors:         NewAuthorLinks(0, authorIDs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Replace 全量替换标量字段和作者顺序
func (b *Book) Replace(title string, publicationDate *time.Time, authorIDs []uint) {
	b.Title = title
	b.PublicationDate = publicationDate
	b.Authors = NewAuthorLinks(b.ID, authorIDs)
	b.UpdatedAt = time.Now()
}

// Validate 校验书名：必填、不超过250个字符、首字母大写
func (b *Book) Validate() error {
	return validateTitle(b.Title)
}

func validateTitle(title string) error {
	return validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("书名不能为空"),
			validation.RuneLength(0, TitleMaxLength).Error("书名不能超过250个字符"),
			rules.FirstLetterUppercase,
		),
	}.Filter()
}
