package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 1, TotalPages(5, 0)) // degenerate page size
}

func TestClampPage(t *testing.T) {
	t.Run("in range passes through", func(t *testing.T) {
		assert.Equal(t, 2, ClampPage(2, 45, 20))
	})

	t.Run("past the end clamps to last page", func(t *testing.T) {
		assert.Equal(t, 3, ClampPage(4, 45, 20))
	})

	t.Run("shrinking result set pulls the page back", func(t *testing.T) {
		// On page 3 of 45, a filter drops the set to 7: one page left.
		assert.Equal(t, 1, ClampPage(3, 7, 20))
	})

	t.Run("never below one", func(t *testing.T) {
		assert.Equal(t, 1, ClampPage(0, 45, 20))
		assert.Equal(t, 1, ClampPage(-3, 0, 20))
	})
}

func TestPage(t *testing.T) {
	items := make([]string, 45)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}

	t.Run("45 items at size 20 gives pages of 20, 20, 5", func(t *testing.T) {
		require.Len(t, Page(items, 1, 20), 20)
		require.Len(t, Page(items, 2, 20), 20)
		last := Page(items, 3, 20)
		require.Len(t, last, 5)
		assert.Equal(t, "item-40", last[0])
		assert.Equal(t, "item-44", last[4])
	})

	t.Run("out of range pages are empty", func(t *testing.T) {
		assert.Empty(t, Page(items, 4, 20))
		assert.Empty(t, Page(items, 0, 20))
	})
}

func TestBounds(t *testing.T) {
	start, end := Bounds(3, 20, 45)
	assert.Equal(t, 41, start)
	assert.Equal(t, 45, end)

	start, end = Bounds(1, 20, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
