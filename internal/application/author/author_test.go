package author

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb/testdb"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

func TestAuthorUseCases(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	authorRepo := gormdb.NewAuthorRepository(db)
	bookRepo := gormdb.NewBookRepository(db)
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo, authorRepo)
	tx := gormdb.NewTxManager(db)
	events := &event.Recorder{}

	create := NewCreateAuthorUseCase(authorService, tx, events)
	get := NewGetAuthorUseCase(authorService)
	list := NewListAuthorsUseCase(authorService)
	update := NewUpdateAuthorUseCase(authorService, tx)
	remove := NewDeleteAuthorUseCase(authorService, bookService, tx, events)

	var ids []uint
	for _, name := range []string{"Borges", "Bioy Casares", "Ocampo"} {
		item, err := create.Execute(ctx, CreateAuthorRequest{Name: name})
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	t.Run("同名作者", func(t *testing.T) {
		_, err := create.Execute(ctx, CreateAuthorRequest{Name: "Borges"})
		assert.ErrorIs(t, err, author.ErrAuthorNameDuplicate)
	})

	t.Run("姓名校验", func(t *testing.T) {
		_, err := create.Execute(ctx, CreateAuthorRequest{Name: "borges"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("搜索", func(t *testing.T) {
		items, err := list.Search(ctx, "casa")
		require.NoError(t, err)
		assert.Equal(t, []AuthorItem{{ID: ids[1], Name: "Bioy Casares"}}, items)

		_, err = list.Search(ctx, "  ")
		assert.ErrorIs(t, err, author.ErrEmptySearchName)
	})

	t.Run("更新", func(t *testing.T) {
		require.NoError(t, update.Execute(ctx, UpdateAuthorRequest{ID: ids[2], Name: "Victoria Ocampo"}))
		assert.ErrorIs(t, update.Execute(ctx, UpdateAuthorRequest{ID: ids[2], Name: "Borges"}), author.ErrAuthorNameDuplicate)
		assert.ErrorIs(t, update.Execute(ctx, UpdateAuthorRequest{ID: 999, Name: "Nadie"}), author.ErrAuthorNotFound)
	})

	t.Run("删除后重新编号", func(t *testing.T) {
		b := book.NewBook("Antología", nil, ids)
		require.NoError(t, bookRepo.Create(ctx, b))

		detail, err := get.Execute(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, []BookItem{{ID: b.ID, Title: "Antología"}}, detail.Books)

		require.NoError(t, remove.Execute(ctx, ids[0]))

		links, err := bookRepo.FindAuthorLinks(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []book.AuthorLink{
			{AuthorID: ids[1], BookID: b.ID, Order: 0},
			{AuthorID: ids[2], BookID: b.ID, Order: 1},
		}, links)

		_, err = get.Execute(ctx, ids[0])
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
		assert.ErrorIs(t, remove.Execute(ctx, ids[0]), author.ErrAuthorNotFound)
	})

	items, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, []string{
		event.AuthorCreated, event.AuthorCreated, event.AuthorCreated, event.AuthorDeleted,
	}, events.Keys())
}
