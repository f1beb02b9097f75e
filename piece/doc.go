// Package piece defines the immutable puzzle Piece: an identity plus four
// optional edge labels in local order top, right, bottom, left.
//
// Raw side values are normalized once, in New: leading padding markers
// (any of the characters in "blankt-") are stripped, and an empty result
// means the side is a border with no label.
//
// Sides(r) reports, for every labelled side, the absolute direction it faces
// once the piece is turned clockwise by r quarter turns. RotationFor is the
// inverse: the rotation that makes a given label face a given direction.
//
//	p := piece.New("0", "1", "2", "3", "4")
//	p.Sides(geometry.East)          // top "1" faces (1,0), right "2" faces (0,1), ...
//	p.RotationFor("1", -1, 0)       // West: top turned to face left
//
// Errors:
//
//   - ErrUnknownSide if RotationFor is asked about a label the piece does not carry.
//   - geometry.ErrInvalidDirection (wrapped) for a non-unit target direction.
package piece
