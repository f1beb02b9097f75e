// Package geometry holds the fixed direction and rotation arithmetic used to
// place puzzle pieces on a 4-connected grid.
//
// What
//
//   - Direction: a unit vector {DX,DY}. Screen coordinates, so "up" is DY=-1.
//   - The four directions in clockwise order starting up:
//     Up(0,-1), Right(1,0), Down(0,1), Left(-1,0), indexed 0..3.
//   - Rotation: a count of clockwise quarter turns in {0,1,2,3}, written as
//     the letters N, E, S, W.
//
// Rotating a piece clockwise by r quarter turns makes the side at local index
// i (0=top, 1=right, 2=bottom, 3=left) face the direction at index (i+r) mod 4.
// Rotate applies that shift to the whole direction list, so entry i of the
// rotated list is what local side i faces.
//
// Both lookup tables are package-level arrays that are never written after
// initialization; accessors return copies.
//
// Errors
//
//   - ErrInvalidDirection   if (dx,dy) is not one of the four unit vectors.
//   - ErrInvalidOrientation if a letter is not one of N, E, S, W.
//
// Complexity: every operation is O(1).
package geometry
