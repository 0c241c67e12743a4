package models

// Boards travel as 15 strings of 15 cells: '.' empty, 'X' or 'O'.

// MoveRequest asks the engine for next's best move.
type MoveRequest struct {
	Board []string `json:"board" binding:"required" validate:"required,len=15,dive,boardrow"`
	Next  string   `json:"next" binding:"required" validate:"required,oneof=X O"`
}

// MoveResponse is the engine's answer. Row and Col are meaningful only when
// HasMove is true.
type MoveResponse struct {
	Row     int   `json:"row"`
	Col     int   `json:"col"`
	Score   int64 `json:"score"`
	HasMove bool  `json:"has_move"`
}

// WinnerRequest asks whether LastMove ended the game.
type WinnerRequest struct {
	Board    []string `json:"board" binding:"required" validate:"required,len=15,dive,boardrow"`
	LastMove []int    `json:"last_move" binding:"required" validate:"required,len=2,dive,min=0,max=14"`
}

// WinnerResponse reports "X", "O" or "" and whether the board is drawn.
type WinnerResponse struct {
	Winner string `json:"winner"`
	Draw   bool   `json:"draw"`
}

// EvaluateRequest asks for the static score of a board.
type EvaluateRequest struct {
	Board []string `json:"board" binding:"required" validate:"required,len=15,dive,boardrow"`
}

// EvaluateResponse carries the score; positive favours O.
type EvaluateResponse struct {
	Score int64 `json:"score"`
}
