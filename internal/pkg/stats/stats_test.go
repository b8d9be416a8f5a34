package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Run("empty series is all zeros", func(t *testing.T) {
		s := Describe(nil)
		assert.Equal(t, Summary{}, s)
	})

	t.Run("single observation has zero std", func(t *testing.T) {
		s := Describe([]int{7})
		assert.Equal(t, 1, s.Count)
		assert.Equal(t, 7.0, s.Mean)
		assert.Equal(t, 0.0, s.Std)
		assert.False(t, math.IsNaN(s.Std))
		assert.Equal(t, 7, s.Min)
		assert.Equal(t, 7, s.Max)
	})

	t.Run("two days", func(t *testing.T) {
		s := Describe([]int{5, 3})
		assert.Equal(t, 4.0, s.Mean)
		assert.InDelta(t, math.Sqrt2, s.Std, 1e-12)
		assert.Equal(t, 3, s.Min)
		assert.Equal(t, 5, s.Max)
	})

	t.Run("sample standard deviation", func(t *testing.T) {
		s := Describe([]int{2, 4, 4, 4, 5, 5, 7, 9})
		assert.Equal(t, 5.0, s.Mean)
		assert.InDelta(t, 2.138, s.Std, 0.001)
		assert.Equal(t, 2, s.Min)
		assert.Equal(t, 9, s.Max)
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{10.6, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.67, RoundTo(2.0/3.0, 2))
	assert.Equal(t, 1.0, RoundTo(1.0, 2))
	assert.Equal(t, 0.33, RoundTo(1.0/3.0, 2))
}
