package book

import (
	"time"

	"github.com/samber/lo"

	"github.com/xiebiao/libraryapi/internal/domain/book"
)

// BookItem 列表项（不含作者）
type BookItem struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	PublicationDate *time.Time `json:"publication_date"`
}

// BookDetail 图书详情，Authors按署名顺序排列
type BookDetail struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	PublicationDate *time.Time   `json:"publication_date"`
	Authors         []AuthorItem `json:"authors"`
	CreatedAt       time.Time    `json:"created_at"`
}

type AuthorItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func toItems(books []*book.Book) []BookItem {
	return lo.Map(books, func(b *book.Book, _ int) BookItem {
		return BookItem{ID: b.ID, Title: b.Title, PublicationDate: b.PublicationDate}
	})
}

func toDetail(b *book.Book) *BookDetail {
	return &BookDetail{
		ID:              b.ID,
		Title:           b.Title,
		PublicationDate: b.PublicationDate,
		Authors: lo.Map(b.Authors, func(l book.AuthorLink, _ int) AuthorItem {
			return AuthorItem{ID: l.AuthorID, Name: l.AuthorName, Order: l.Order}
		}),
		CreatedAt: b.CreatedAt,
	}
}
