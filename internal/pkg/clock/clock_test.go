package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fixed clock", func(t *testing.T) {
		c := NewMockClock(start)
		assert.Equal(t, start, c.Now())
		assert.Equal(t, start, c.Now())

		c.Advance(time.Hour)
		assert.Equal(t, start.Add(time.Hour), c.Now())

		c.Set(start)
		assert.Equal(t, start, c.Now())
	})

	t.Run("stepping clock", func(t *testing.T) {
		c := NewSteppingClock(start, time.Second)
		assert.Equal(t, start, c.Now())
		assert.Equal(t, start.Add(time.Second), c.Now())
	})
}

func TestRealClock(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}
