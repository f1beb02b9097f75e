package geometry

import "errors"

// Sentinel errors for geometry lookups.
var (
	// ErrInvalidDirection is returned when a vector is not one of the four unit directions.
	ErrInvalidDirection = errors.New("geometry: invalid direction")

	// ErrInvalidOrientation is returned when an orientation letter is not N, E, S or W.
	ErrInvalidOrientation = errors.New("geometry: invalid orientation")
)

// Direction is a unit vector on the puzzle grid. Y grows downwards.
type Direction struct {
	DX, DY int
}

// The four unit directions.
var (
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
)

// clockwise is the fixed direction order, starting up. Never mutated.
var clockwise = [4]Direction{Up, Right, Down, Left}

// Rotation counts clockwise quarter turns. Valid values are 0..3.
type Rotation uint8

const (
	// North leaves a piece as declared: its top side faces up.
	North Rotation = iota
	// East turns a piece once clockwise: its top side faces right.
	East
	// South turns a piece upside down.
	South
	// West turns a piece three times clockwise: its top side faces left.
	West
)

// letters maps a Rotation to its orientation letter. Never mutated.
var letters = [4]byte{'N', 'E', 'S', 'W'}
