package piece

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/geometry"
)

// ErrUnknownSide is returned when a label is not one of the piece's sides.
var ErrUnknownSide = errors.New("piece: unknown side")

// padding lists the characters stripped from the front of raw side values.
const padding = "blankt-"

// Local side indices.
const (
	Top = iota
	Right
	Bottom
	Left
)

// Piece is one puzzle piece. The zero value is a piece with no id and no sides.
// Pieces are comparable and safe to use as map keys.
type Piece struct {
	id     string
	labels [4]string
}

// Side is one labelled side of a placed piece and the direction it faces.
type Side struct {
	DX, DY int
	Label  string
}

// New builds a Piece from its id and raw side values in local order.
func New(id, top, right, bottom, left string) Piece {
	return Piece{
		id: id,
		labels: [4]string{
			NormalizeLabel(top),
			NormalizeLabel(right),
			NormalizeLabel(bottom),
			NormalizeLabel(left),
		},
	}
}

// NormalizeLabel strips leading padding markers from raw. An empty result
// means the side has no label.
func NormalizeLabel(raw string) string {
	return strings.TrimLeft(raw, padding)
}

// ID returns the piece identity.
func (p Piece) ID() string { return p.id }

// Label returns the label at local index i (Top..Left), "" if absent.
func (p Piece) Label(i int) string {
	if i < 0 || i > 3 {
		return ""
	}
	return p.labels[i]
}

// Labels returns the four labels in local order.
func (p Piece) Labels() [4]string { return p.labels }

// Sides lists every present side of p with the direction it faces after
// turning p clockwise by r quarter turns. Absent sides are omitted; the
// result is in local order and freshly allocated on every call.
func (p Piece) Sides(r geometry.Rotation) []Side {
	dirs := geometry.Rotate(geometry.Directions(), r)
	out := make([]Side, 0, 4)
	for i, label := range p.labels {
		if label == "" {
			continue
		}
		out = append(out, Side{DX: dirs[i].DX, DY: dirs[i].DY, Label: label})
	}
	return out
}

// RotationFor returns the rotation after which the side carrying label faces
// (dx,dy). Returns ErrUnknownSide if label is empty or not on p, or a wrapped
// geometry.ErrInvalidDirection if (dx,dy) is not a unit direction.
func (p Piece) RotationFor(label string, dx, dy int) (geometry.Rotation, error) {
	local := p.localIndex(label)
	if local < 0 {
		return 0, fmt.Errorf("%w: %q on piece %q", ErrUnknownSide, label, p.id)
	}
	dir, err := geometry.DirectionIndex(dx, dy)
	if err != nil {
		return 0, fmt.Errorf("piece %q: %w", p.id, err)
	}
	return geometry.Rotation((dir - local + 4) % 4), nil
}

// Facing returns the label p shows towards d when turned by r, "" if none.
func (p Piece) Facing(r geometry.Rotation, d geometry.Direction) string {
	for _, s := range p.Sides(r) {
		if s.DX == d.DX && s.DY == d.DY {
			return s.Label
		}
	}
	return ""
}

func (p Piece) String() string {
	return fmt.Sprintf("%s[%s|%s|%s|%s]", p.id, p.labels[0], p.labels[1], p.labels[2], p.labels[3])
}

// localIndex returns the first local index carrying label, or -1.
func (p Piece) localIndex(label string) int {
	if label == "" {
		return -1
	}
	for i, l := range p.labels {
		if l == label {
			return i
		}
	}
	return -1
}
