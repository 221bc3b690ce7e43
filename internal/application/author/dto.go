package author

import (
	"time"

	"github.com/samber/lo"

	"github.com/xiebiao/libraryapi/internal/domain/author"
)

// AuthorItem 列表项
type AuthorItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AuthorDetail 作者详情（含参与的图书）
type AuthorDetail struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Books     []BookItem `json:"books"`
	CreatedAt time.Time  `json:"created_at"`
}

type BookItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func toItems(authors []*author.Author) []AuthorItem {
	return lo.Map(authors, func(a *author.Author, _ int) AuthorItem {
		return AuthorItem{ID: a.ID, Name: a.Name}
	})
}

func toDetail(a *author.Author) *AuthorDetail {
	return &AuthorDetail{
		ID:   a.ID,
		Name: a.Name,
		Books: lo.Map(a.Books, func(b author.BookSummary, _ int) BookItem {
			return BookItem{ID: b.ID, Title: b.Title}
		}),
		CreatedAt: a.CreatedAt,
	}
}
