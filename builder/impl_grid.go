// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// impl_grid.go — rows×cols rectangular puzzle with a recorded answer.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewPieces).
//   • Seam labels are unique per seam; each interior label is declared by
//     exactly two pieces, border sides by none.
//   • Truth holds the true placement of every piece; Seed is Truth of the
//     top-left piece.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/piece"
	"github.com/katalvlaran/jigsaw/placement"
	"github.com/katalvlaran/jigsaw/puzzle"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Puzzle is a generated puzzle and its answer.
type Puzzle struct {
	Rows, Cols int
	// Pieces in (possibly shuffled) output order.
	Pieces []piece.Piece
	// Raw side values as written, keyed by piece id, in local order.
	Raw map[string][4]string
	// Truth maps piece id to its true placement.
	Truth map[string]placement.Placement
	// Seed is the known placement handed to the solver.
	Seed placement.Placement
}

// Grid builds a rows×cols puzzle.
func Grid(rows, cols int, opts ...Option) (*Puzzle, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewPieces)
	}
	cfg := newConfig(opts...)

	n := rows * cols
	pz := &Puzzle{
		Rows:   rows,
		Cols:   cols,
		Pieces: make([]piece.Piece, 0, n),
		Raw:    make(map[string][4]string, n),
		Truth:  make(map[string]placement.Placement, n),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// absolute labels in clockwise direction order: up, right, down, left
			abs := [4]string{cfg.border, cfg.border, cfg.border, cfg.border}
			if y > 0 {
				abs[0] = cfg.labelFmt('v', x, y-1)
			}
			if x+1 < cols {
				abs[1] = cfg.labelFmt('h', x, y)
			}
			if y+1 < rows {
				abs[2] = cfg.labelFmt('v', x, y)
			}
			if x > 0 {
				abs[3] = cfg.labelFmt('h', x-1, y)
			}

			r := geometry.North
			if cfg.rotate {
				r = geometry.Rotation(cfg.rng.Intn(4))
			}
			// local side i faces direction (i+r) mod 4
			var local [4]string
			for i := range local {
				local[i] = abs[(i+int(r))%4]
			}

			id := cfg.idFn(y*cols + x)
			p := piece.New(id, local[0], local[1], local[2], local[3])
			pz.Pieces = append(pz.Pieces, p)
			pz.Raw[id] = local
			pz.Truth[id] = placement.Placement{X: x, Y: y, Rotation: r, Piece: p}
		}
	}
	pz.Seed = pz.Truth[cfg.idFn(0)]

	if cfg.shuffle {
		cfg.rng.Shuffle(len(pz.Pieces), func(i, j int) {
			pz.Pieces[i], pz.Pieces[j] = pz.Pieces[j], pz.Pieces[i]
		})
	}
	return pz, nil
}

// Records renders the puzzle as input records: raw sides for every piece,
// orientation/row/col only on the seed.
func (pz *Puzzle) Records() []puzzle.Record {
	out := make([]puzzle.Record, 0, len(pz.Pieces))
	for _, p := range pz.Pieces {
		raw := pz.Raw[p.ID()]
		rec := puzzle.Record{ID: p.ID(), Top: raw[0], Right: raw[1], Bottom: raw[2], Left: raw[3]}
		if p == pz.Seed.Piece {
			rec.Orientation = pz.Seed.Rotation.String()
			rec.Row = fmt.Sprint(pz.Seed.Y)
			rec.Col = fmt.Sprint(pz.Seed.X)
		}
		out = append(out, rec)
	}
	return out
}
