package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFeedPage(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		total int64
		want  int
	}{
		{"缺省页码", "", 25, 1},
		{"非数字页码", "abc", 25, 1},
		{"零页码回退到最后一页", "0", 25, 3},
		{"负数页码回退到最后一页", "-3", 25, 3},
		{"正常页码", "2", 25, 2},
		{"超界回退到最后一页", "99", 25, 3},
		{"空列表", "5", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFeedPage(tt.raw, tt.total))
		})
	}
}

func TestResolveCategoryPage(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		total int64
		want  int
	}{
		{"缺省页码", "", 25, 1},
		{"非数字页码", "abc", 25, 1},
		{"正常页码", "3", 25, 3},
		{"超界回退到第一页", "99", 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCategoryPage(tt.raw, tt.total))
		})
	}
}

func TestResolveProfilePage(t *testing.T) {
	number, err := resolveProfilePage("", 25)
	assert.NoError(t, err)
	assert.Equal(t, 1, number)

	number, err = resolveProfilePage("3", 25)
	assert.NoError(t, err)
	assert.Equal(t, 3, number)

	_, err = resolveProfilePage("abc", 25)
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = resolveProfilePage("4", 25)
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = resolveProfilePage("0", 25)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestBuildPage(t *testing.T) {
	page := buildPage(2, 25)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.Total)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Equal(t, 3, page.NextNumber)
	assert.Equal(t, 1, page.PrevNumber)

	empty := buildPage(1, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
