package game

// CheckWin reports the player who completed TargetLen in a row through last,
// or NoWinner. Only runs through last are inspected, so it must be called after
// every move on a board that had no winning run before that move.
func CheckWin(b *Board, last Move) Cell {
	player := b.At(last)
	if player == Empty {
		return NoWinner
	}
	for _, d := range Directions {
		if RunLength(b, last, d[0], d[1]) >= TargetLen {
			return player
		}
	}
	return NoWinner
}

// RunLength counts the maximal run of the mark at m along (dr, dc), both ways,
// including m itself.
func RunLength(b *Board, m Move, dr, dc int) int {
	player := b[m.Row][m.Col]
	n := 1
	for i := 1; InBounds(m.Row+i*dr, m.Col+i*dc) && b[m.Row+i*dr][m.Col+i*dc] == player; i++ {
		n++
	}
	for i := 1; InBounds(m.Row-i*dr, m.Col-i*dc) && b[m.Row-i*dr][m.Col-i*dc] == player; i++ {
		n++
	}
	return n
}

// FindWinner scans every line of the board for TargetLen consecutive marks.
// It is used to validate positions that did not come from a tracked game.
func FindWinner(b *Board) Cell {
	winner := NoWinner
	b.ScanLines(func(line []Cell) {
		if winner != NoWinner {
			return
		}
		run, prev := 0, Empty
		for _, c := range line {
			if c != Empty && c == prev {
				run++
			} else {
				run = 1
			}
			prev = c
			if c != Empty && run >= TargetLen {
				winner = c
				return
			}
		}
	})
	return winner
}
