package book

import (
	"time"
)

// PatchView 图书可被JSON Patch修改的字段
// ID和作者关联不在视图中，无法通过patch寻址
type PatchView struct {
	Title           string     `json:"title"`
	PublicationDate *time.Time `json:"publication_date"`
}

// ToPatchView 从实体构造视图
func ToPatchView(b *Book) PatchView {
	return PatchView{
		Title:           b.Title,
		PublicationDate: b.PublicationDate,
	}
}

// Validate 与实体使用相同的书名规则
func (v PatchView) Validate() error {
	return validateTitle(v.Title)
}

// MergeInto 把校验通过的视图写回实体
func (v PatchView) MergeInto(b *Book) {
	b.Title = v.Title
	b.PublicationDate = v.PublicationDate
	b.UpdatedAt = time.Now()
}
