package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/piece"
	"github.com/katalvlaran/jigsaw/placement"
)

// Sentinel errors for record handling and solving.
var (
	// ErrMissingSeed is returned when no record carries a seed placement.
	ErrMissingSeed = errors.New("puzzle: no seed record")
	// ErrMultipleSeeds is returned when more than one record carries a seed placement.
	ErrMultipleSeeds = errors.New("puzzle: more than one seed record")
	// ErrInvalidCoordinate is returned when a seed row or col is not an integer.
	ErrInvalidCoordinate = errors.New("puzzle: invalid seed coordinate")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("puzzle: duplicate piece id")
	// ErrIncompletePuzzle is returned when some pieces cannot be reached from the seed.
	ErrIncompletePuzzle = errors.New("puzzle: pieces unreachable from seed")
)

// Record is one puzzle row with its fields as written.
type Record struct {
	ID          string
	Top         string
	Right       string
	Bottom      string
	Left        string
	Orientation string
	Row         string
	Col         string
}

// Piece builds the piece described by rec.
func (rec Record) Piece() piece.Piece {
	return piece.New(rec.ID, rec.Top, rec.Right, rec.Bottom, rec.Left)
}

// IsSeed reports whether rec carries an orientation.
func (rec Record) IsSeed() bool {
	return strings.TrimSpace(rec.Orientation) != ""
}

// Pieces builds one piece per record, in order.
// Returns ErrDuplicateID if an id repeats.
func Pieces(records []Record) ([]piece.Piece, error) {
	out := make([]piece.Piece, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if j, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("%w: %q at records %d and %d", ErrDuplicateID, rec.ID, j, i)
		}
		seen[rec.ID] = i
		out = append(out, rec.Piece())
	}
	return out, nil
}

// FindSeed returns the placement of the single seed record: orientation
// gives the rotation, col the X and row the Y coordinate.
func FindSeed(records []Record) (placement.Placement, error) {
	at := -1
	for i, rec := range records {
		if !rec.IsSeed() {
			continue
		}
		if at >= 0 {
			return placement.Placement{}, fmt.Errorf("%w: %q and %q", ErrMultipleSeeds, records[at].ID, rec.ID)
		}
		at = i
	}
	if at < 0 {
		return placement.Placement{}, ErrMissingSeed
	}

	rec := records[at]
	r, err := geometry.ParseOrientation(rec.Orientation)
	if err != nil {
		return placement.Placement{}, fmt.Errorf("puzzle: seed %q: %w", rec.ID, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(rec.Row))
	if err != nil {
		return placement.Placement{}, fmt.Errorf("%w: seed %q row %q", ErrInvalidCoordinate, rec.ID, rec.Row)
	}
	x, err := strconv.Atoi(strings.TrimSpace(rec.Col))
	if err != nil {
		return placement.Placement{}, fmt.Errorf("%w: seed %q col %q", ErrInvalidCoordinate, rec.ID, rec.Col)
	}
	return placement.Placement{X: x, Y: y, Rotation: r, Piece: rec.Piece()}, nil
}

// Apply returns a copy of records with orientation, row and col replaced by
// each piece's placement in sol. Records without a placement get empty fields.
func Apply(records []Record, sol map[string]placement.Placement) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		p, ok := sol[rec.ID]
		if !ok {
			rec.Orientation, rec.Row, rec.Col = "", "", ""
			out[i] = rec
			continue
		}
		rec.Orientation = p.Rotation.String()
		rec.Row = strconv.Itoa(p.Y)
		rec.Col = strconv.Itoa(p.X)
		out[i] = rec
	}
	return out
}
