package book

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

// fakeRepository 内存仓储，只实现服务测试需要的行为
type fakeRepository struct {
	books  map[uint]*Book
	links  map[uint][]AuthorLink
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: map[uint]*Book{}, links: map[uint][]AuthorLink{}}
}

func (r *fakeRepository) Create(_ context.Context, b *Book) error {
	r.nextID++
	b.ID = r.nextID
	for i := range b.Authors {
		b.Authors[i].BookID = b.ID
	}
	cp := *b
	cp.Authors = nil
	r.books[b.ID] = &cp
	r.links[b.ID] = append([]AuthorLink(nil), b.Authors...)
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uint) (*Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepository) FindByIDWithAuthors(ctx context.Context, id uint) (*Book, error) {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Authors, _ = r.FindAuthorLinks(ctx, id)
	return b, nil
}

func (r *fakeRepository) List(context.Context) ([]*Book, error) { return nil, nil }

func (r *fakeRepository) Update(_ context.Context, b *Book) error {
	cp := *b
	cp.Authors = nil
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeRepository) ReplaceAuthors(_ context.Context, bookID uint, links []AuthorLink) error {
	r.links[bookID] = append([]AuthorLink(nil), links...)
	return nil
}

func (r *fakeRepository) FindAuthorLinks(_ context.Context, bookID uint) ([]AuthorLink, error) {
	links := append([]AuthorLink(nil), r.links[bookID]...)
	sort.Slice(links, func(i, j int) bool { return links[i].Order < links[j].Order })
	return links, nil
}

func (r *fakeRepository) FindBookIDsByAuthor(_ context.Context, authorID uint) ([]uint, error) {
	var ids []uint
	for bookID, links := range r.links {
		for _, l := range links {
			if l.AuthorID == authorID {
				ids = append(ids, bookID)
			}
		}
	}
	return ids, nil
}

func (r *fakeRepository) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.books[id]
	return ok, nil
}

type fakeAuthors map[uint]bool

func (a fakeAuthors) FindExistingIDs(_ context.Context, ids []uint) ([]uint, error) {
	var found []uint
	for _, id := range ids {
		if a[id] {
			found = append(found, id)
		}
	}
	return found, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fakeAuthors{1: true, 2: true, 3: true}), repo
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("按提交顺序编号", func(t *testing.T) {
		svc, repo := newTestService()

		b, err := svc.CreateBook(ctx, "Ficciones", nil, []uint{3, 1})
		require.NoError(t, err)

		links, _ := repo.FindAuthorLinks(ctx, b.ID)
		assert.Equal(t, []uint{3, 1}, AuthorIDs(links))
	})

	tests := []struct {
		name      string
		title     string
		authorIDs []uint
		want      error
	}{
		{"没有作者", "Ficciones", nil, ErrNoAuthors},
		{"空作者列表", "Ficciones", []uint{}, ErrNoAuthors},
		{"作者重复", "Ficciones", []uint{1, 1}, ErrDuplicateAuthorIDs},
		{"作者不存在", "Ficciones", []uint{1, 99}, ErrAuthorNotExist},
		{"书名为空", "", []uint{1}, apperrors.ErrValidation},
		{"书名小写", "ficciones", []uint{1}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.CreateBook(ctx, tt.title, nil, tt.authorIDs)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.books, "失败时不应写入")
		})
	}
}

func TestService_ReplaceBook(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	b, err := svc.CreateBook(ctx, "Ficciones", nil, []uint{1, 2, 3})
	require.NoError(t, err)

	t.Run("重新编号且不留旧关联", func(t *testing.T) {
		_, err := svc.ReplaceBook(ctx, b.ID, "El Aleph", nil, []uint{2})
		require.NoError(t, err)

		links, _ := repo.FindAuthorLinks(ctx, b.ID)
		assert.Equal(t, []AuthorLink{{AuthorID: 2, BookID: b.ID, Order: 0}}, links)
		assert.Equal(t, "El Aleph", repo.books[b.ID].Title)
	})

	t.Run("空作者列表被拒绝", func(t *testing.T) {
		_, err := svc.ReplaceBook(ctx, b.ID, "El Aleph", nil, nil)
		assert.ErrorIs(t, err, ErrNoAuthors)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := svc.ReplaceBook(ctx, 999, "El Aleph", nil, []uint{1})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_PatchBook(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	b, err := svc.CreateBook(ctx, "Ficciones", nil, []uint{1, 2})
	require.NoError(t, err)

	t.Run("修改书名", func(t *testing.T) {
		_, err := svc.PatchBook(ctx, b.ID, []byte(`[{"op":"replace","path":"/title","value":"Artificios"}]`))
		require.NoError(t, err)
		assert.Equal(t, "Artificios", repo.books[b.ID].Title)
	})

	t.Run("修改出版日期", func(t *testing.T) {
		_, err := svc.PatchBook(ctx, b.ID, []byte(`[{"op":"replace","path":"/publication_date","value":"1944-01-01T00:00:00Z"}]`))
		require.NoError(t, err)
		require.NotNil(t, repo.books[b.ID].PublicationDate)
		assert.Equal(t, 1944, repo.books[b.ID].PublicationDate.Year())
	})

	t.Run("置空书名返回字段错误且不保存", func(t *testing.T) {
		_, err := svc.PatchBook(ctx, b.ID, []byte(`[{"op":"replace","path":"/title","value":""}]`))

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Details, "title")
		assert.Equal(t, "Artificios", repo.books[b.ID].Title)
	})

	t.Run("不能修改作者或ID", func(t *testing.T) {
		for _, doc := range []string{
			`[{"op":"replace","path":"/id","value":5}]`,
			`[{"op":"add","path":"/authors","value":[3]}]`,
		} {
			_, err := svc.PatchBook(ctx, b.ID, []byte(doc))
			assert.ErrorIs(t, err, ErrInvalidPatch)
		}

		links, _ := repo.FindAuthorLinks(ctx, b.ID)
		assert.Equal(t, []uint{1, 2}, AuthorIDs(links))
	})

	t.Run("格式错误", func(t *testing.T) {
		for _, doc := range []string{`{"op":"replace"}`, ` null `} {
			_, err := svc.PatchBook(ctx, b.ID, []byte(doc))
			assert.ErrorIs(t, err, ErrInvalidPatch, doc)
		}
	})

	t.Run("日期无法解析时返回字段错误", func(t *testing.T) {
		_, err := svc.PatchBook(ctx, b.ID, []byte(`[{"op":"replace","path":"/publication_date","value":"bad"}]`))

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Details, "publication_date")
		assert.Equal(t, 1944, repo.books[b.ID].PublicationDate.Year())
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := svc.PatchBook(ctx, 999, []byte(`[]`))
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_CompactAuthorLinks(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	b, err := svc.CreateBook(ctx, "Ficciones", nil, []uint{1, 2, 3})
	require.NoError(t, err)

	// 模拟删除作者2后剩下的关联
	repo.links[b.ID] = []AuthorLink{
		{AuthorID: 1, BookID: b.ID, Order: 0},
		{AuthorID: 3, BookID: b.ID, Order: 2},
	}

	require.NoError(t, svc.CompactAuthorLinks(ctx, []uint{b.ID}))

	links, _ := repo.FindAuthorLinks(ctx, b.ID)
	assert.Equal(t, []AuthorLink{
		{AuthorID: 1, BookID: b.ID, Order: 0},
		{AuthorID: 3, BookID: b.ID, Order: 1},
	}, links)
}
