package listwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptyList(t *testing.T) {
	w := Compute(DefaultConfig(), 0, 0)
	assert.Equal(t, 0, w.StartIndex)
	assert.Equal(t, 0, w.EndIndex)
	assert.Equal(t, 0, w.OffsetY)
}

func TestCompute_TopOfLargeList(t *testing.T) {
	w := Compute(DefaultConfig(), 1000, 0)
	assert.Equal(t, 0, w.StartIndex)
	assert.Equal(t, 0, w.OffsetY)
	assert.Equal(t, 420, w.ViewportHeight)
	// ceil(420/68) = 7 visible rows plus overscan on both sides.
	assert.Equal(t, 7+2*6, w.EndIndex)
}

func TestCompute_ScrolledWindow(t *testing.T) {
	cfg := DefaultConfig()
	w := Compute(cfg, 1000, 68*100)

	assert.Equal(t, 100-cfg.Overscan, w.StartIndex)
	assert.Equal(t, w.StartIndex*cfg.RowHeight, w.OffsetY)
	assert.Equal(t, w.StartIndex+7+2*cfg.Overscan, w.EndIndex)
}

func TestCompute_InvariantsHold(t *testing.T) {
	cfg := DefaultConfig()
	for _, itemCount := range []int{0, 1, 2, 7, 150, 1000} {
		for _, scrollTop := range []int{0, 1, 67, 68, 500, 68 * 999, 1 << 20} {
			w := Compute(cfg, itemCount, scrollTop)
			require.GreaterOrEqual(t, w.StartIndex, 0, "itemCount=%d scrollTop=%d", itemCount, scrollTop)
			require.LessOrEqual(t, w.StartIndex, w.EndIndex, "itemCount=%d scrollTop=%d", itemCount, scrollTop)
			require.LessOrEqual(t, w.EndIndex, itemCount, "itemCount=%d scrollTop=%d", itemCount, scrollTop)
		}
	}
}

func TestCompute_TinyListDoesNotDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	w := Compute(cfg, 1, 0)
	assert.Equal(t, cfg.RowHeight*2, w.ViewportHeight)
	assert.Equal(t, 0, w.StartIndex)
	assert.Equal(t, 1, w.EndIndex)
}

func TestCompute_StaleScrollClamped(t *testing.T) {
	// Simulates a scroll offset left over from a longer list.
	w := Compute(DefaultConfig(), 3, 68*500)
	assert.Equal(t, 3, w.EndIndex)
	assert.LessOrEqual(t, w.StartIndex, w.EndIndex)
}

func TestCompute_ZeroConfigFallsBackToDefaults(t *testing.T) {
	w := Compute(Config{}, 10, 0)
	assert.Equal(t, 0, w.StartIndex)
	assert.Positive(t, w.EndIndex)
}
