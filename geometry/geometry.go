package geometry

import "fmt"

// Directions returns a copy of the clockwise direction list.
func Directions() [4]Direction {
	return clockwise
}

// DirectionAt returns the clockwise direction at index i, taken mod 4.
func DirectionAt(i int) Direction {
	return clockwise[mod4(i)]
}

// Rotate shifts dirs cyclically by `by` positions so that entry i of the
// result is dirs[(i+by) mod 4]: the direction a piece's local side i faces
// after the piece is turned clockwise by `by` quarter turns.
func Rotate(dirs [4]Direction, by Rotation) [4]Direction {
	var out [4]Direction
	for i := range dirs {
		out[i] = dirs[mod4(i+int(by))]
	}
	return out
}

// DirectionIndex returns the clockwise index of (dx,dy).
// Returns ErrInvalidDirection if the vector is not a unit direction.
func DirectionIndex(dx, dy int) (int, error) {
	for i, d := range clockwise {
		if d.DX == dx && d.DY == dy {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, dx, dy)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String renders d as "(dx,dy)".
func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	return r < 4
}

// Letter returns the orientation letter of r (N, E, S or W).
// Out-of-range rotations are reduced mod 4.
func (r Rotation) Letter() byte {
	return letters[r%4]
}

func (r Rotation) String() string {
	return string(r.Letter())
}

// ParseOrientation converts an orientation letter to its Rotation.
// The input must be exactly one of "N", "E", "S" or "W"; anything else,
// including padded or lower-case letters, returns ErrInvalidOrientation.
func ParseOrientation(s string) (Rotation, error) {
	if len(s) == 1 {
		for i, l := range letters {
			if s[0] == l {
				return Rotation(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// mod4 reduces i into 0..3, also for negative i.
func mod4(i int) int {
	return ((i % 4) + 4) % 4
}
