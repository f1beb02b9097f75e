package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/piece"
)

// TestBuild_FilesPresentLabels indexes every non-empty side label.
func TestBuild_FilesPresentLabels(t *testing.T) {
	a := piece.New("A", "", "x", "", "")
	b := piece.New("B", "", "", "", "x")
	c := piece.New("C", "y", "", "", "")
	idx := adjacency.Build([]piece.Piece{a, b, c})

	assert.Equal(t, []string{"x", "y"}, idx.Labels())
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []piece.Piece{a, b}, idx.Members("x"))
	assert.Equal(t, []piece.Piece{c}, idx.Members("y"))
	assert.Empty(t, idx.Members("z"))
	assert.Equal(t, []piece.Piece{a, b, c}, idx.Pieces())
}

// TestBuild_Dedup stores a piece once per label even when listed twice.
func TestBuild_Dedup(t *testing.T) {
	a := piece.New("A", "x", "x", "", "")
	idx := adjacency.Build([]piece.Piece{a, a})
	assert.Len(t, idx.Members("x"), 1)
	assert.Len(t, idx.Pieces(), 1)
	assert.Equal(t, 1, idx.NumPieces())
}

// TestNeighborOf_Interior returns the piece across a two-member edge, from both sides.
func TestNeighborOf_Interior(t *testing.T) {
	a := piece.New("A", "", "x", "", "")
	b := piece.New("B", "", "", "", "x")
	idx := adjacency.Build([]piece.Piece{a, b})

	got, err := idx.NeighborOf("x", a)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	got, err = idx.NeighborOf("x", b)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

// TestNeighborOf_Violations covers every way the exactly-one contract can break.
func TestNeighborOf_Violations(t *testing.T) {
	a := piece.New("A", "", "x", "", "")
	b := piece.New("B", "", "", "", "x")
	c := piece.New("C", "x", "", "", "")
	lone := piece.New("L", "solo", "", "", "")

	crowded := adjacency.Build([]piece.Piece{a, b, c, lone})

	cases := []struct {
		name      string
		label     string
		excluding piece.Piece
	}{
		{"unknown label", "nope", a},
		{"border edge", "solo", lone},
		{"three owners", "x", a},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := crowded.NeighborOf(tc.label, tc.excluding)
			assert.ErrorIs(t, err, adjacency.ErrAdjacencyConsistency)
		})
	}

	// two owners, neither of which is the caller
	pair := adjacency.Build([]piece.Piece{a, b})
	_, err := pair.NeighborOf("x", lone)
	assert.ErrorIs(t, err, adjacency.ErrAdjacencyConsistency)
}

// TestValidate flags labels shared by three or more pieces only.
func TestValidate(t *testing.T) {
	a := piece.New("A", "", "x", "", "")
	b := piece.New("B", "", "", "", "x")
	lone := piece.New("L", "solo", "", "", "")
	require.NoError(t, adjacency.Build([]piece.Piece{a, b, lone}).Validate())

	c := piece.New("C", "x", "", "", "")
	err := adjacency.Build([]piece.Piece{a, b, c}).Validate()
	assert.ErrorIs(t, err, adjacency.ErrAdjacencyConsistency)
	assert.Contains(t, err.Error(), `"x"`)
}
