package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(i int) *int { return &i }

func sampleTree() []*Comment {
	return []*Comment{
		{
			ID:   1,
			Text: "root one",
			Children: []*Comment{
				{ID: 2, ParentID: ptr(1), Text: "child", Children: []*Comment{
					{ID: 3, ParentID: ptr(2), Text: "grandchild"},
				}},
				{ID: 4, ParentID: ptr(1), Text: "second child"},
			},
		},
		{ID: 5, Text: "root two"},
	}
}

func TestWalk_PreOrder(t *testing.T) {
	var ids, depths []int
	Walk(sampleTree(), func(c *Comment, depth int) bool {
		ids = append(ids, c.ID)
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, depths)
}

func TestWalk_StopsEarly(t *testing.T) {
	var ids []int
	Walk(sampleTree(), func(c *Comment, _ int) bool {
		ids = append(ids, c.ID)
		return c.ID != 3
	})

	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestWalk_SkipsNil(t *testing.T) {
	roots := []*Comment{nil, {ID: 7, Children: []*Comment{nil}}}
	assert.Equal(t, 1, Count(roots))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 5, Count(sampleTree()))
	assert.Equal(t, 0, Count(nil))
}

func TestFind(t *testing.T) {
	c := Find(sampleTree(), 3)
	require.NotNil(t, c)
	assert.Equal(t, "grandchild", c.Text)
	assert.False(t, c.IsRoot())

	assert.Nil(t, Find(sampleTree(), 42))
}
