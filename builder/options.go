// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// options.go — functional options for puzzle generation.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     functions, nil RNG). Grid itself never panics.
//   • Later options override earlier ones.

package builder

import (
	"math/rand"
	"strconv"
)

// Option customizes puzzle generation.
type Option func(*config)

// config aggregates all generation knobs. Passed by value to Grid.
type config struct {
	// idFn maps a row-major cell index to a piece id.
	idFn func(int) string
	// rng drives rotations and shuffling.
	rng *rand.Rand
	// rotate turns every piece by a random rotation when true.
	rotate bool
	// shuffle randomizes piece order when true.
	shuffle bool
	// border is written for sides on the puzzle edge.
	border string
	// labelFmt renders a seam label from its kind ('h' or 'v') and cell.
	labelFmt func(kind byte, x, y int) string
}

const (
	defaultSeed   = int64(1)
	defaultBorder = "blank"
)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		rng:      rand.New(rand.NewSource(defaultSeed)),
		rotate:   true,
		shuffle:  true,
		border:   defaultBorder,
		labelFmt: seamLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// seamLabel renders "h<x>_<y>" for the seam right of (x,y) and "v<x>_<y>"
// for the seam below it.
func seamLabel(kind byte, x, y int) string {
	return string(kind) + strconv.Itoa(x) + "_" + strconv.Itoa(y)
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for all random choices. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIDScheme sets the piece id generator (row-major cell index → id).
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRotation toggles random piece rotation. Off means every piece is North.
func WithRotation(on bool) Option {
	return func(c *config) {
		c.rotate = on
	}
}

// WithShuffle toggles shuffling of the piece list. Off keeps row-major order.
func WithShuffle(on bool) Option {
	return func(c *config) {
		c.shuffle = on
	}
}

// WithBorder sets the raw value written for border sides. It should
// normalize to an empty label ("", "blank", "-", ...).
func WithBorder(marker string) Option {
	return func(c *config) {
		c.border = marker
	}
}
