// Package adjacency indexes puzzle pieces by the edge labels they carry.
//
// What:
//
//   - Build walks every piece once and files it under each of its present
//     side labels. Rotation plays no part: the key is the label itself.
//   - NeighborOf answers "which piece is across this edge" and enforces the
//     exactly-one-neighbor contract.
//   - Components groups pieces that are connected through shared labels.
//
// Invariant: a well-formed puzzle declares every label on one piece (a
// border edge) or two pieces (an interior edge). Build does not check this;
// NeighborOf and Validate report violations as ErrAdjacencyConsistency.
//
// Complexity:
//
//   - Build:      O(P) for P pieces (at most 4 labels each).
//   - NeighborOf: O(1).
//   - Components: O(P), Memory: O(P).
//   - Validate:   O(L log L) for L labels (sorted for a stable report).
//
// An Index is read-only after Build and may be shared by readers.
package adjacency
