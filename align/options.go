package align

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

// Defaults.
const (
	// DefaultGap is the rune emitted opposite a gap move.
	DefaultGap = '-'

	// DefaultMaxCells caps (m+1)·(n+1). At 32 bytes per cell it allows
	// roughly 1 GiB of grid.
	DefaultMaxCells = 1 << 25

	// DefaultWorkers of 0 selects the sequential row-major fill.
	DefaultWorkers = 0
)

// Option configures Align.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// through Option values.
type Options struct {
	gap      rune
	maxCells int
	keepGrid bool
	workers  int
	logger   *slog.Logger
}

// WithGap sets the gap marker rune. It must be a valid Unicode rune.
func WithGap(r rune) Option {
	return func(o *Options) { o.gap = r }
}

// WithMaxCells sets the allocation budget in cells. Grids with more cells
// fail with ErrAllocation before any memory is requested.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.maxCells = n }
}

// WithKeepGrid retains the filled grid in Result.Grid for diagnostics.
func WithKeepGrid() Option {
	return func(o *Options) { o.keepGrid = true }
}

// WithWavefront fills the interior along anti-diagonals using up to
// workers goroutines per diagonal. workers == 0 keeps the sequential fill.
// Results are identical to the sequential fill, tie-breaks included.
func WithWavefront(workers int) Option {
	return func(o *Options) { o.workers = workers }
}

// WithLogger routes per-stage Debug records to l. A nil logger silences them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{
		gap:      DefaultGap,
		maxCells: DefaultMaxCells,
		workers:  DefaultWorkers,
		logger:   discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	if o.gap == utf8.RuneError || !utf8.ValidRune(o.gap) {
		return o, fmt.Errorf("gap %q: %w", o.gap, ErrBadOption)
	}
	if o.maxCells <= 0 {
		return o, fmt.Errorf("max cells %d: %w", o.maxCells, ErrBadOption)
	}
	if o.workers < 0 {
		return o, fmt.Errorf("workers %d: %w", o.workers, ErrBadOption)
	}

	return o, nil
}
