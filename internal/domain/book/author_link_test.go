package book

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignOrder(t *testing.T) {
	tests := []struct {
		name      string
		authorIDs []uint
	}{
		{"单个作者", []uint{7}},
		{"三个作者", []uint{3, 1, 2}},
		{"逆序ID", []uint{9, 8, 7, 6, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := make([]AuthorLink, len(tt.authorIDs))
			for i, id := range tt.authorIDs {
				links[i] = AuthorLink{AuthorID: id, BookID: 1, Order: 99}
			}

			got := AssignOrder(links)

			// 编号恰好是0..n-1
			orders := make([]int, len(got))
			for i, l := range got {
				orders[i] = l.Order
			}
			sort.Ints(orders)
			for i, o := range orders {
				assert.Equal(t, i, o)
			}

			// 按编号排序后还原提交顺序
			sort.Slice(got, func(i, j int) bool { return got[i].Order < got[j].Order })
			assert.Equal(t, tt.authorIDs, AuthorIDs(got))
		})
	}
}

func TestAssignOrder_Nil(t *testing.T) {
	assert.Nil(t, AssignOrder(nil))
	assert.Nil(t, NewAuthorLinks(1, nil))
}

func TestAssignOrder_ModifiesInPlace(t *testing.T) {
	links := []AuthorLink{{AuthorID: 1}, {AuthorID: 2}}

	AssignOrder(links)

	assert.Equal(t, 0, links[0].Order)
	assert.Equal(t, 1, links[1].Order)
}

func TestAssignOrder_DoesNotDeduplicate(t *testing.T) {
	links := NewAuthorLinks(1, []uint{4, 4})

	assert.Len(t, links, 2)
	assert.Equal(t, 0, links[0].Order)
	assert.Equal(t, 1, links[1].Order)
}

func TestNewAuthorLinks_OrderFollowsSubmission(t *testing.T) {
	ab := NewAuthorLinks(10, []uint{1, 2})
	ba := NewAuthorLinks(10, []uint{2, 1})

	assert.Equal(t, []AuthorLink{{AuthorID: 1, BookID: 10, Order: 0}, {AuthorID: 2, BookID: 10, Order: 1}}, ab)
	assert.Equal(t, []AuthorLink{{AuthorID: 2, BookID: 10, Order: 0}, {AuthorID: 1, BookID: 10, Order: 1}}, ba)
}

func TestAssignOrder_CompactsAfterRemoval(t *testing.T) {
	links := NewAuthorLinks(1, []uint{5, 6, 7})
	remaining := []AuthorLink{links[0], links[2]}

	got := AssignOrder(remaining)

	assert.Equal(t, []uint{5, 7}, AuthorIDs(got))
	assert.Equal(t, 0, got[0].Order)
	assert.Equal(t, 1, got[1].Order)
}
