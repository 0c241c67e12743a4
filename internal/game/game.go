package game

import "fmt"

// Game tracks a single match between two players. X always moves first.
type Game struct {
	Board       Board
	CurrentTurn Cell
	Winner      Cell
	Turn        int
	last        *Move
}

func NewGame() *Game {
	return &Game{
		CurrentTurn: PlayerX,
		Winner:      NoWinner,
	}
}

// Move plays the current player's mark at (row, col). Illegal requests are
// rejected here so the engine never sees them.
func (g *Game) Move(row, col int) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if !InBounds(row, col) {
		return fmt.Errorf("(%d, %d): %w", row, col, ErrOutOfBounds)
	}
	if g.Board[row][col] != Empty {
		return fmt.Errorf("(%d, %d): %w", row, col, ErrCellOccupied)
	}

	m := Move{Row: row, Col: col}
	g.Board.Place(m, g.CurrentTurn)
	g.Turn++
	g.last = &m

	g.Winner = CheckWin(&g.Board, m)
	if g.Winner == NoWinner {
		g.CurrentTurn = g.CurrentTurn.Opponent()
	}
	return nil
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (Move, bool) {
	if g.last == nil {
		return Move{}, false
	}
	return *g.last, true
}

// IsDraw checks if the board filled up without a winner.
func (g *Game) IsDraw() bool {
	return g.Winner == NoWinner && g.Turn >= Cells
}

func (g *Game) IsOver() bool {
	return g.Winner != NoWinner || g.IsDraw()
}
