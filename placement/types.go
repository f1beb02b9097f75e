package placement

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/piece"
)

// Sentinel errors for placement.
var (
	// ErrIndexNil is returned if a nil index pointer is passed.
	ErrIndexNil = errors.New("placement: index is nil")

	// ErrInvalidSeed is returned when the seed rotation is not 0..3.
	ErrInvalidSeed = errors.New("placement: invalid seed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)

// Placement is a piece at an absolute grid coordinate, turned clockwise by
// Rotation quarter turns relative to its declared side order.
type Placement struct {
	X, Y     int
	Rotation geometry.Rotation
	Piece    piece.Piece
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@(%d,%d)%s", p.Piece.ID(), p.X, p.Y, p.Rotation)
}

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds parameters and callbacks for a solve.
type Options struct {
	// Ctx is checked once per dequeued piece.
	Ctx context.Context

	// OnPlace runs after a piece is recorded (the seed included, depth 0).
	// A non-nil error aborts the solve.
	OnPlace func(p Placement, depth int) error

	// MaxDepth, if > 0, leaves pieces further than this many hops unplaced.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnPlace:  func(Placement, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace registers a callback run after every placement.
func WithOnPlace(fn func(p Placement, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// WithMaxDepth limits propagation to d hops from the seed.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a solve.
type Result struct {
	// Solution maps piece id to its placement. Entries are never overwritten.
	Solution map[string]Placement
	// Order lists piece ids in placement order, seed first.
	Order []string
	// Depth maps piece id to edge hops from the seed.
	Depth map[string]int
	// Parent maps piece id to the id it was placed from. The seed has none.
	Parent map[string]string
}

// Placed reports whether id has a placement.
func (r *Result) Placed(id string) bool {
	_, ok := r.Solution[id]
	return ok
}

// Missing returns the ids from ids that were not placed, in input order.
func (r *Result) Missing(ids []string) []string {
	var out []string
	for _, id := range ids {
		if !r.Placed(id) {
			out = append(out, id)
		}
	}
	return out
}

// PathTo returns the chain of piece ids from the seed to dest.
// Returns an error if dest was not placed.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("placement: %q was not placed", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
