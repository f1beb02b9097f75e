package adjacency

import "github.com/katalvlaran/jigsaw/piece"

// Components finds every group of pieces connected through shared labels.
// Components are ordered by their first piece in build order; ids within a
// component are in BFS visit order from that piece.
//
// Time:   O(P) for P pieces.
// Memory: O(P) for the seen set and output.
func (idx *Index) Components() [][]string {
	seen := make(map[piece.Piece]bool, len(idx.pieces))
	var comps [][]string

	for _, start := range idx.pieces {
		if seen[start] {
			continue
		}
		queue := []piece.Piece{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u.ID())
			for _, label := range u.Labels() {
				if label == "" {
					continue
				}
				for _, v := range idx.entries[label] {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
