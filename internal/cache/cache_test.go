package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/khanesh/khanesh/internal/cache"
)

func TestCache(t *testing.T) {
	t.Run("GetMissingName", func(t *testing.T) {
		c := cache.New()

		_, ok := c.Get("token")
		assert.False(t, ok)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		c := cache.New()

		c.Set("token", "abc123", time.Minute)

		v, ok := c.Get("token")
		assert.True(t, ok)
		assert.Equal(t, "abc123", v)
	})

	t.Run("ExpiredEntryIsGone", func(t *testing.T) {
		now := time.Now()
		c := cache.New(cache.WithClock(func() time.Time { return now }))

		c.Set("token", "abc123", time.Minute)

		now = now.Add(2 * time.Minute)

		_, ok := c.Get("token")
		assert.False(t, ok)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		c := cache.New()

		c.Set("token", "old", time.Minute)
		c.Set("token", "new", time.Minute)

		v, ok := c.Get("token")
		assert.True(t, ok)
		assert.Equal(t, "new", v)
	})

	t.Run("Delete", func(t *testing.T) {
		c := cache.New()

		c.Set("token", "abc123", time.Minute)
		c.Delete("token")

		_, ok := c.Get("token")
		assert.False(t, ok)
	})

	t.Run("NamesAreIndependent", func(t *testing.T) {
		c := cache.New()

		c.Set("a", "1", time.Minute)
		c.Set("b", "2", time.Minute)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "1", v)

		v, ok = c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, "2", v)
	})
}
