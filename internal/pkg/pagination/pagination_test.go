package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMeta(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		meta := GetMeta(&Params{Page: 2, Limit: 10}, 35)
		assert.Equal(t, 4, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("first page", func(t *testing.T) {
		meta := GetMeta(&Params{Page: 1, Limit: 10}, 35)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		meta := GetMeta(&Params{Page: 4, Limit: 10}, 35)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		meta := GetMeta(&Params{Page: 1, Limit: 10}, 30)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("empty result set", func(t *testing.T) {
		meta := GetMeta(&Params{Page: 1, Limit: 10}, 0)
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})
}

func TestNewResponse(t *testing.T) {
	data := []string{"a", "b"}
	resp := NewResponse(data, &Params{Page: 1, Limit: 20}, 2)
	assert.Equal(t, data, resp.Data)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}
