package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

type memoryRepository struct {
	comments map[uint]*Comment
	nextID   uint
}

func (r *memoryRepository) Create(_ context.Context, c *Comment) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (*Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryRepository) ListByBook(_ context.Context, bookID uint) ([]*Comment, error) {
	var out []*Comment
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, c *Comment) error {
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

type books map[uint]bool

func (b books) Exists(_ context.Context, id uint) (bool, error) { return b[id], nil }

func newTestService() (Service, *memoryRepository) {
	repo := &memoryRepository{comments: map[uint]*Comment{}}
	return NewService(repo, books{1: true, 2: true}), repo
}

func TestService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("成功", func(t *testing.T) {
		svc, repo := newTestService()

		c, err := svc.AddComment(ctx, 1, 42, "Muy bueno")
		require.NoError(t, err)
		assert.Equal(t, uint(42), repo.comments[c.ID].UserID)
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.AddComment(ctx, 99, 42, "Muy bueno")
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Empty(t, repo.comments)
	})

	t.Run("内容为空", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddComment(ctx, 1, 42, "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestService_GetAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	c1, _ := svc.AddComment(ctx, 1, 42, "uno")
	_, _ = svc.AddComment(ctx, 2, 42, "dos")

	list, err := svc.ListComments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListComments(ctx, 99)
	assert.ErrorIs(t, err, ErrBookNotFound)

	got, err := svc.GetComment(ctx, 1, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, "uno", got.Content)

	_, err = svc.GetComment(ctx, 2, c1.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound, "评论不属于该图书")
}

func TestService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	c, err := svc.AddComment(ctx, 1, 42, "original")
	require.NoError(t, err)

	tests := []struct {
		name    string
		bookID  uint
		id      uint
		userID  uint
		content string
		want    error
	}{
		{"图书不存在", 99, c.ID, 42, "x", ErrBookNotFound},
		{"评论不存在", 1, 999, 42, "x", ErrCommentNotFound},
		{"评论属于其他图书", 2, c.ID, 42, "x", ErrCommentNotFound},
		{"不是发表者", 1, c.ID, 7, "x", ErrNotCommentAuthor},
		{"内容为空", 1, c.ID, 42, "", apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateComment(ctx, tt.bookID, tt.id, tt.userID, tt.content)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "original", repo.comments[c.ID].Content)
		})
	}

	t.Run("发表者本人修改", func(t *testing.T) {
		require.NoError(t, svc.UpdateComment(ctx, 1, c.ID, 42, "editado"))
		assert.Equal(t, "editado", repo.comments[c.ID].Content)
		assert.Equal(t, uint(42), repo.comments[c.ID].UserID)
	})
}
