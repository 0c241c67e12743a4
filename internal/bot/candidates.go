package bot

import "ctchen222/Five-In-A-Row/internal/game"

// Candidates lists the empty cells within TargetLen-1 steps of an occupied
// cell, nearest first. Distances grow breadth-first along the four axes; ties
// keep row-major order, axis order, forward before backward.
//
// An empty board yields no candidates; callers choose the opening move.
func Candidates(b *game.Board) []game.Move {
	const unset = -1
	var distance [game.BoardSize][game.BoardSize]int8
	for r := range b {
		for c := range b[r] {
			if b[r][c] == game.Empty {
				distance[r][c] = unset
			}
		}
	}

	moves := make([]game.Move, 0, 64)
	for d := int8(0); d < game.TargetLen-1; d++ {
		for r := 0; r < game.BoardSize; r++ {
			for c := 0; c < game.BoardSize; c++ {
				if distance[r][c] != d {
					continue
				}
				for _, dir := range game.Directions {
					for _, sign := range [2]int{1, -1} {
						nr, nc := r+sign*dir[0], c+sign*dir[1]
						if game.InBounds(nr, nc) && distance[nr][nc] == unset {
							distance[nr][nc] = d + 1
							moves = append(moves, game.Move{Row: nr, Col: nc})
						}
					}
				}
			}
		}
	}
	return moves
}
