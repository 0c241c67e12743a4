package bot

import (
	"math"

	"ctchen222/Five-In-A-Row/internal/game"
)

// Score is a position value. Positive favours O, negative favours X.
type Score int64

const (
	// MinScore and MaxScore bound every reachable score and serve as the
	// initial best-so-far values of the minimizer and maximizer.
	MinScore Score = math.MinInt64
	MaxScore Score = math.MaxInt64

	// WinScore is added to the static evaluation of a won position.
	WinScore Score = game.Cells * game.TargetLen * game.TargetLen * game.TargetLen
)

// Sign returns +1 for O, -1 for X and 0 otherwise.
func Sign(c game.Cell) Score {
	switch c {
	case game.PlayerO:
		return 1
	case game.PlayerX:
		return -1
	}
	return 0
}

// Evaluate statically scores the board. Every window of TargetLen cells on
// every line adds the cube of O's count when X is absent and subtracts the
// cube of X's count when O is absent; mixed windows count for nothing.
func Evaluate(b *game.Board) Score {
	var score Score
	b.ScanLines(func(line []game.Cell) {
		score += evaluateLine(line)
	})
	return score
}

func evaluateLine(line []game.Cell) Score {
	var score Score
	var xs, os int
	for i, c := range line {
		switch c {
		case game.PlayerX:
			xs++
		case game.PlayerO:
			os++
		}
		if i >= game.TargetLen {
			switch line[i-game.TargetLen] {
			case game.PlayerX:
				xs--
			case game.PlayerO:
				os--
			}
		}
		if i < game.TargetLen-1 {
			continue
		}
		if xs == 0 {
			score += cube(os)
		} else if os == 0 {
			score -= cube(xs)
		}
	}
	return score
}

func cube(n int) Score {
	return Score(n * n * n)
}
