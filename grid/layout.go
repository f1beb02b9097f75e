package grid

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/placement"
)

// FromSolution lays sol out on its bounding box.
// Returns ErrEmptySolution for an empty map and ErrOverlap if two pieces
// share a cell (reported for the lexically smallest offending ids).
func FromSolution(sol map[string]placement.Placement) (*Layout, error) {
	if len(sol) == 0 {
		return nil, ErrEmptySolution
	}
	ids := make([]string, 0, len(sol))
	for id := range sol {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	first := sol[ids[0]]
	minX, maxX, minY, maxY := first.X, first.X, first.Y, first.Y
	for _, id := range ids[1:] {
		p := sol[id]
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	w, h := maxX-minX+1, maxY-minY+1
	cells := make([][]*placement.Placement, h)
	for y := range cells {
		cells[y] = make([]*placement.Placement, w)
	}
	for _, id := range ids {
		p := sol[id]
		x, y := p.X-minX, p.Y-minY
		if prev := cells[y][x]; prev != nil {
			return nil, fmt.Errorf("%w: %q and %q at (%d,%d)", ErrOverlap, prev.Piece.ID(), id, p.X, p.Y)
		}
		cells[y][x] = &p
	}

	return &Layout{Width: w, Height: h, MinX: minX, MinY: minY, Cells: cells}, nil
}

// InBounds reports whether cell (x,y), relative to (MinX,MinY), is on the board.
func (l *Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the placement at absolute coordinate (x,y), if any.
func (l *Layout) At(x, y int) (placement.Placement, bool) {
	rx, ry := x-l.MinX, y-l.MinY
	if !l.InBounds(rx, ry) || l.Cells[ry][rx] == nil {
		return placement.Placement{}, false
	}
	return *l.Cells[ry][rx], true
}

// Holes counts empty cells.
func (l *Layout) Holes() int {
	n := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c == nil {
				n++
			}
		}
	}
	return n
}

// Coordinate converts a row-major index back to relative (x,y).
func (l *Layout) Coordinate(idx int) (x, y int) {
	return idx % l.Width, idx / l.Width
}

// Verify checks every seam between occupied neighbors, scanning cells in
// row-major order and comparing each with its right and lower neighbor.
func (l *Layout) Verify() error {
	// right and down are enough to visit each seam once
	offsets := []geometry.Direction{geometry.Right, geometry.Down}
	for i := 0; i < l.Width*l.Height; i++ {
		x, y := l.Coordinate(i)
		a := l.Cells[y][x]
		if a == nil {
			continue
		}
		for _, d := range offsets {
			nx, ny := x+d.DX, y+d.DY
			if !l.InBounds(nx, ny) || l.Cells[ny][nx] == nil {
				continue
			}
			b := l.Cells[ny][nx]
			la := a.Piece.Facing(a.Rotation, d)
			lb := b.Piece.Facing(b.Rotation, d.Opposite())
			if la != lb {
				return fmt.Errorf("%w: %q at (%d,%d) shows %q towards %s, %q shows %q back",
					ErrSeamMismatch, a.Piece.ID(), a.X, a.Y, la, d, b.Piece.ID(), lb)
			}
		}
	}
	return nil
}

// Render writes the layout as text, one line per row. Cells are padded to
// the widest cell, counted in runes.
func (l *Layout) Render(w io.Writer) error {
	width := len(hole)
	for _, row := range l.Cells {
		for _, c := range row {
			if c != nil {
				width = max(width, utf8.RuneCountInString(cellText(c)))
			}
		}
	}
	var sb strings.Builder
	for _, row := range l.Cells {
		sb.Reset()
		for x, c := range row {
			text := hole
			if c != nil {
				text = cellText(c)
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
			sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(text)))
		}
		if _, err := io.WriteString(w, strings.TrimRight(sb.String(), " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func cellText(p *placement.Placement) string {
	return p.Piece.ID() + ":" + p.Rotation.String()
}
