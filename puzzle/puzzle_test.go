package puzzle_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/piece"
	"github.com/katalvlaran/jigsaw/placement"
	"github.com/katalvlaran/jigsaw/puzzle"
)

var pieceEqual = cmp.Comparer(func(a, b piece.Piece) bool { return a == b })

func twoByOne() []puzzle.Record {
	return []puzzle.Record{
		{ID: "A", Top: "blank", Right: "x", Bottom: "blank", Left: "blank", Orientation: "N", Row: "0", Col: "0"},
		{ID: "B", Top: "blank", Right: "blank", Bottom: "blank", Left: "x"},
	}
}

// TestSolve_TwoByOne places B right of the seed A, both unrotated.
func TestSolve_TwoByOne(t *testing.T) {
	recs := twoByOne()
	res, err := puzzle.Solve(recs, puzzle.Options{})
	require.NoError(t, err)

	a, b := recs[0].Piece(), recs[1].Piece()
	want := map[string]placement.Placement{
		"A": {X: 0, Y: 0, Rotation: geometry.North, Piece: a},
		"B": {X: 1, Y: 0, Rotation: geometry.North, Piece: b},
	}
	if diff := cmp.Diff(want, res.Solution, pieceEqual); diff != "" {
		t.Errorf("Solution mismatch (-want +got):\n%s", diff)
	}
}

// TestSolve_SeedOffsetAndRotation honours the seed's row, col and orientation.
func TestSolve_SeedOffsetAndRotation(t *testing.T) {
	recs := twoByOne()
	recs[0].Orientation, recs[0].Row, recs[0].Col = "S", "4", "-2"
	res, err := puzzle.Solve(recs, puzzle.Options{})
	require.NoError(t, err)

	// A upside down: its right side faces left, so B sits at x-1 and also turns South.
	b := res.Solution["B"]
	assert.Equal(t, -3, b.X)
	assert.Equal(t, 4, b.Y)
	assert.Equal(t, geometry.South, b.Rotation)
}

// TestSolve_GeneratedGrid recovers the known answer of a scrambled 6×9 puzzle.
func TestSolve_GeneratedGrid(t *testing.T) {
	pz, err := builder.Grid(6, 9, builder.WithSeed(42))
	require.NoError(t, err)

	res, err := puzzle.Solve(pz.Records(), puzzle.Options{Strict: true})
	require.NoError(t, err)
	require.Len(t, res.Solution, 54)
	if diff := cmp.Diff(pz.Truth, res.Solution, pieceEqual); diff != "" {
		t.Errorf("Solution mismatch (-want +got):\n%s", diff)
	}
}

// TestSolve_Deterministic runs the same input twice.
func TestSolve_Deterministic(t *testing.T) {
	pz, err := builder.Grid(4, 4, builder.WithSeed(3))
	require.NoError(t, err)
	recs := pz.Records()

	first, err := puzzle.Solve(recs, puzzle.Options{})
	require.NoError(t, err)
	second, err := puzzle.Solve(recs, puzzle.Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Order, second.Order)
	if diff := cmp.Diff(first.Solution, second.Solution, pieceEqual); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

// TestSolve_Disconnected reports unreachable pieces unless partial results are allowed.
func TestSolve_Disconnected(t *testing.T) {
	recs := append(twoByOne(),
		puzzle.Record{ID: "C", Top: "q"},
		puzzle.Record{ID: "D", Bottom: "q"},
	)

	res, err := puzzle.Solve(recs, puzzle.Options{})
	require.ErrorIs(t, err, puzzle.ErrIncompletePuzzle)
	assert.Contains(t, err.Error(), "C, D")
	require.NotNil(t, res)
	assert.Len(t, res.Solution, 2)

	res, err = puzzle.Solve(recs, puzzle.Options{AllowPartial: true})
	require.NoError(t, err)
	assert.False(t, res.Placed("C"))
	assert.False(t, res.Placed("D"))

	out := puzzle.Apply(recs, res.Solution)
	assert.Equal(t, "", out[2].Orientation)
	assert.Equal(t, "", out[3].Row)
	assert.Equal(t, "N", out[1].Orientation)
}

// TestSolve_Errors covers seed and record validation.
func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func([]puzzle.Record) []puzzle.Record
		want   error
	}{
		{"no seed", func(r []puzzle.Record) []puzzle.Record {
			r[0].Orientation = ""
			return r
		}, puzzle.ErrMissingSeed},
		{"two seeds", func(r []puzzle.Record) []puzzle.Record {
			r[1].Orientation, r[1].Row, r[1].Col = "E", "0", "1"
			return r
		}, puzzle.ErrMultipleSeeds},
		{"bad orientation", func(r []puzzle.Record) []puzzle.Record {
			r[0].Orientation = "Q"
			return r
		}, geometry.ErrInvalidOrientation},
		{"bad row", func(r []puzzle.Record) []puzzle.Record {
			r[0].Row = "one"
			return r
		}, puzzle.ErrInvalidCoordinate},
		{"bad col", func(r []puzzle.Record) []puzzle.Record {
			r[0].Col = ""
			return r
		}, puzzle.ErrInvalidCoordinate},
		{"duplicate id", func(r []puzzle.Record) []puzzle.Record {
			r[1].ID = "A"
			return r
		}, puzzle.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.Solve(tc.mutate(twoByOne()), puzzle.Options{})
			if !errors.Is(err, tc.want) {
				t.Errorf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestSolve_Strict rejects a label shared by three pieces before solving.
func TestSolve_Strict(t *testing.T) {
	recs := append(twoByOne(), puzzle.Record{ID: "C", Top: "x"})
	_, err := puzzle.Solve(recs, puzzle.Options{Strict: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "declared by 3 pieces")
}

// TestApply_KeepsOrderAndSides copies side fields verbatim and fills placements.
func TestApply_KeepsOrderAndSides(t *testing.T) {
	pz, err := builder.Grid(3, 3, builder.WithSeed(9))
	require.NoError(t, err)
	recs := pz.Records()

	res, err := puzzle.Solve(recs, puzzle.Options{})
	require.NoError(t, err)
	out := puzzle.Apply(recs, res.Solution)

	require.Len(t, out, len(recs))
	for i, rec := range out {
		in := recs[i]
		assert.Equal(t, in.ID, rec.ID)
		assert.Equal(t, [4]string{in.Top, in.Right, in.Bottom, in.Left}, [4]string{rec.Top, rec.Right, rec.Bottom, rec.Left})

		truth := pz.Truth[rec.ID]
		assert.Equal(t, truth.Rotation.String(), rec.Orientation)
		assert.Equal(t, truth.Y, atoi(t, rec.Row))
		assert.Equal(t, truth.X, atoi(t, rec.Col))
	}
	// input is not modified
	assert.Equal(t, recs, pz.Records())
}

// TestFindSeed_Whitespace tolerates padded coordinates but not a padded
// orientation letter.
func TestFindSeed_Whitespace(t *testing.T) {
	recs := twoByOne()
	recs[0].Orientation, recs[0].Row, recs[0].Col = "W", " 7", "3\n"
	seed, err := puzzle.FindSeed(recs)
	require.NoError(t, err)
	assert.Equal(t, geometry.West, seed.Rotation)
	assert.Equal(t, 3, seed.X)
	assert.Equal(t, 7, seed.Y)
	assert.Equal(t, "A", seed.Piece.ID())

	recs[0].Orientation = " W "
	_, err = puzzle.FindSeed(recs)
	assert.ErrorIs(t, err, geometry.ErrInvalidOrientation)
}
