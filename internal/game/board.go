package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BoardSize is the number of cells per row and column.
	BoardSize = 15
	// TargetLen is the number of marks in a row needed to win.
	TargetLen = 5
	// Cells is the number of moves that fill the board.
	Cells = BoardSize * BoardSize
)

var (
	ErrOutOfBounds  = errors.New("move out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrCellEmpty    = errors.New("cell is empty")
	ErrGameOver     = errors.New("game already finished")
	ErrInvalidBoard = errors.New("invalid board")
)

// Cell is the occupancy of a single board position.
type Cell int8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

// NoWinner is reported by the win checks when nobody has five in a row.
const NoWinner = Empty

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// String returns the mark used on the wire: "X", "O" or "".
func (c Cell) String() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// ParseCell converts a wire mark back into a Cell.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown mark %q", s)
}

// Move is a board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Center is the conventional opening move.
var Center = Move{Row: BoardSize / 2, Col: BoardSize / 2}

// Directions lists the four axes: vertical, horizontal and both diagonals.
// Each axis is walked forward and backward.
var Directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < BoardSize && col < BoardSize
}

// Board is the grid. It is a value type so two boards compare with ==.
type Board [BoardSize][BoardSize]Cell

// At returns the cell at m.
func (b *Board) At(m Move) Cell {
	if !InBounds(m.Row, m.Col) {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, m))
	}
	return b[m.Row][m.Col]
}

// Place puts c on an empty cell. Placing on an occupied or off-board cell is
// a programming error and panics.
func (b *Board) Place(m Move, c Cell) {
	if !InBounds(m.Row, m.Col) {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, m))
	}
	if b[m.Row][m.Col] != Empty {
		panic(fmt.Errorf("%w: %v", ErrCellOccupied, m))
	}
	b[m.Row][m.Col] = c
}

// Clear empties an occupied cell, undoing a Place.
func (b *Board) Clear(m Move) {
	if !InBounds(m.Row, m.Col) {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, m))
	}
	if b[m.Row][m.Col] == Empty {
		panic(fmt.Errorf("%w: %v", ErrCellEmpty, m))
	}
	b[m.Row][m.Col] = Empty
}

// IsEmpty reports whether no mark has been placed yet.
func (b *Board) IsEmpty() bool {
	return b.Count() == 0
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Rows encodes the board as BoardSize strings using '.', 'X' and 'O'.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	var sb strings.Builder
	for r := range b {
		sb.Reset()
		for c := range b[r] {
			switch b[r][c] {
			case PlayerX:
				sb.WriteByte('X')
			case PlayerO:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String joins Rows with '/'; used as a compact key.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "/")
}

// ParseBoard decodes the Rows format and returns the board with its turn count.
func ParseBoard(rows []string) (*Board, int, error) {
	if len(rows) != BoardSize {
		return nil, 0, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, BoardSize, len(rows))
	}
	var b Board
	turn := 0
	for r, row := range rows {
		if len(row) != BoardSize {
			return nil, 0, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(row))
		}
		for c := 0; c < BoardSize; c++ {
			switch row[c] {
			case '.':
			case 'X', 'x':
				b[r][c] = PlayerX
				turn++
			case 'O', 'o':
				b[r][c] = PlayerO
				turn++
			default:
				return nil, 0, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidBoard, row[c], r, c)
			}
		}
	}
	return &b, turn, nil
}
