package listwindow

// Package listwindow computes the visible slice of a long ordered list so the
// org chart stays responsive on large reporting hierarchies. Only rows inside
// (or near) the scroll viewport are rendered; OffsetY realigns the slice with
// its true scroll position.

type Config struct {
	RowHeight     int
	Overscan      int
	MaxListHeight int
}

// DefaultConfig matches the canonical client's row metrics.
func DefaultConfig() Config {
	return Config{
		RowHeight:     68,
		Overscan:      6,
		MaxListHeight: 420,
	}
}

type Window struct {
	StartIndex     int
	EndIndex       int
	OffsetY        int
	ViewportHeight int
}

// Compute returns the window of rows to render for the given scroll offset.
// Callers must reset scrollTop to 0 whenever the backing list changes; a stale
// offset into a shorter list is clamped rather than rejected.
func Compute(cfg Config, itemCount, scrollTop int) Window {
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = DefaultConfig().RowHeight
	}
	if cfg.Overscan < 0 {
		cfg.Overscan = 0
	}
	if cfg.MaxListHeight <= 0 {
		cfg.MaxListHeight = DefaultConfig().MaxListHeight
	}
	if itemCount < 0 {
		itemCount = 0
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	viewportHeight := itemCount * cfg.RowHeight
	if min := cfg.RowHeight * 2; viewportHeight < min {
		viewportHeight = min
	}
	if viewportHeight > cfg.MaxListHeight {
		viewportHeight = cfg.MaxListHeight
	}

	startIndex := scrollTop/cfg.RowHeight - cfg.Overscan
	if startIndex < 0 {
		startIndex = 0
	}

	visibleCount := ceilDiv(viewportHeight, cfg.RowHeight) + 2*cfg.Overscan

	endIndex := startIndex + visibleCount
	if endIndex > itemCount {
		endIndex = itemCount
	}
	if startIndex > endIndex {
		startIndex = endIndex
	}

	return Window{
		StartIndex:     startIndex,
		EndIndex:       endIndex,
		OffsetY:        startIndex * cfg.RowHeight,
		ViewportHeight: viewportHeight,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
