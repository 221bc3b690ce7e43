package author

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

type memoryRepository struct {
	authors map[uint]*Author
	nextID  uint
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{authors: map[uint]*Author{}}
}

func (r *memoryRepository) Create(_ context.Context, a *Author) error {
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memoryRepository) FindByIDWithBooks(ctx context.Context, id uint) (*Author, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryRepository) List(context.Context) ([]*Author, error) {
	var out []*Author
	for id := uint(1); id <= r.nextID; id++ {
		if a, ok := r.authors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryRepository) SearchByName(ctx context.Context, keyword string) ([]*Author, error) {
	all, _ := r.List(ctx)
	var out []*Author
	for _, a := range all {
		if strings.Contains(a.Name, keyword) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryRepository) ExistsByName(_ context.Context, name string, excludeID uint) (bool, error) {
	for id, a := range r.authors {
		if a.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func (r *memoryRepository) Update(_ context.Context, a *Author) error {
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.authors[id]; !ok {
		return ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

func (r *memoryRepository) FindExistingIDs(_ context.Context, ids []uint) ([]uint, error) {
	var out []uint
	for _, id := range ids {
		if _, ok := r.authors[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func TestService_CreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("成功", func(t *testing.T) {
		svc := NewService(newMemoryRepository())

		a, err := svc.CreateAuthor(ctx, "Jorge Luis Borges")
		require.NoError(t, err)
		assert.NotZero(t, a.ID)
	})

	t.Run("同名作者", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		_, err := svc.CreateAuthor(ctx, "Borges")
		require.NoError(t, err)

		_, err = svc.CreateAuthor(ctx, "Borges")
		assert.ErrorIs(t, err, ErrAuthorNameDuplicate)
	})

	invalid := []struct {
		name  string
		value string
	}{
		{"空姓名", ""},
		{"首字母小写", "borges"},
		{"超长", "B" + strings.Repeat("o", NameMaxLength)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			_, err := NewService(repo).CreateAuthor(ctx, tt.value)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Contains(t, appErr.Details, "name")
			assert.Empty(t, repo.authors)
		})
	}
}

func TestService_UpdateAuthor(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	svc := NewService(repo)

	a, _ := svc.CreateAuthor(ctx, "Borges")
	_, _ = svc.CreateAuthor(ctx, "Cortázar")

	assert.ErrorIs(t, svc.UpdateAuthor(ctx, 999, "Otro"), ErrAuthorNotFound)
	assert.ErrorIs(t, svc.UpdateAuthor(ctx, a.ID, "Cortázar"), ErrAuthorNameDuplicate)
	assert.ErrorIs(t, svc.UpdateAuthor(ctx, a.ID, "minúscula"), apperrors.ErrValidation)

	require.NoError(t, svc.UpdateAuthor(ctx, a.ID, "Borges"), "保留原名不算重复")
	require.NoError(t, svc.UpdateAuthor(ctx, a.ID, "Jorge Luis Borges"))
	assert.Equal(t, "Jorge Luis Borges", repo.authors[a.ID].Name)
}

func TestService_SearchAuthors(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepository())
	_, _ = svc.CreateAuthor(ctx, "Jorge Luis Borges")
	_, _ = svc.CreateAuthor(ctx, "Julio Cortázar")

	got, err := svc.SearchAuthors(ctx, "Borg")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jorge Luis Borges", got[0].Name)

	_, err = svc.SearchAuthors(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptySearchName)
}
