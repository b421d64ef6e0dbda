package banlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerTotals(t *testing.T) {
	assert.Equal(t, 3, NewPager(12, 5, 1).TotalPages())
	assert.Equal(t, 1, NewPager(5, 5, 1).TotalPages())
	assert.Equal(t, 2, NewPager(6, 5, 1).TotalPages())
	// An empty list still renders as one page.
	assert.Equal(t, 1, NewPager(0, 5, 1).TotalPages())
}

func TestPagerClamping(t *testing.T) {
	assert.Equal(t, 1, NewPager(12, 5, 0).Page)
	assert.Equal(t, 1, NewPager(12, 5, -3).Page)
	assert.Equal(t, 3, NewPager(12, 5, 99).Page)
	assert.Equal(t, 2, NewPager(12, 5, 2).Page)
}

func TestPagerNavigationBounds(t *testing.T) {
	p := NewPager(12, 5, 1)
	assert.False(t, p.HasPrev())
	assert.Equal(t, 1, p.Prev().Page, "prev on first page is a no-op")

	p = p.Next()
	assert.Equal(t, 2, p.Page)
	p = p.Next()
	assert.Equal(t, 3, p.Page)
	assert.False(t, p.HasNext())
	assert.Equal(t, 3, p.Next().Page, "next on last page is a no-op")
}

func TestPagerBounds(t *testing.T) {
	start, end := NewPager(12, 5, 1).Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)

	start, end = NewPager(12, 5, 3).Bounds()
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	start, end = NewPager(0, 5, 1).Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestPagerSinglePage(t *testing.T) {
	assert.True(t, NewPager(3, 5, 1).SinglePage())
	assert.True(t, NewPager(0, 5, 1).SinglePage())
	assert.False(t, NewPager(6, 5, 1).SinglePage())
}
