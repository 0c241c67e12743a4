package bot

import "ctchen222/Five-In-A-Row/internal/game"

// DefaultMaxDepth is how many plies the engine looks ahead.
const DefaultMaxDepth = 2

// Result is a search outcome. HasMove is false for horizon and terminal
// values, and when no legal move exists.
type Result struct {
	Score   Score
	Move    game.Move
	HasMove bool
}

// Searcher runs a depth-limited minimax with alpha-beta pruning over a single
// board, placing and removing marks instead of copying positions. A Searcher
// is not safe for concurrent use.
type Searcher struct {
	MaxDepth int

	evaluate func(*game.Board) Score
	nodes    int64
}

func NewSearcher(maxDepth int) *Searcher {
	return &Searcher{
		MaxDepth: maxDepth,
		evaluate: Evaluate,
	}
}

// Nodes returns the number of positions visited so far.
func (s *Searcher) Nodes() int64 {
	return s.nodes
}

// Best searches from the root for side with the widest possible bound.
func (s *Searcher) Best(b *game.Board, turn int, side game.Cell) Result {
	bound := MinScore
	if isMaximizing(side) {
		bound = MaxScore
	}
	return s.Search(turn, 0, b, side, bound, nil)
}

// Search scores the position with side to move. bound is the best score the
// opponent already holds one ply up; a reply at least as good for side ends
// the node early. last is the move that produced this position, or nil at the
// root. b is returned in its original state.
func (s *Searcher) Search(turn, depth int, b *game.Board, side game.Cell, bound Score, last *game.Move) Result {
	s.nodes++

	if last != nil {
		if winner := game.CheckWin(b, *last); winner != game.NoWinner {
			return Result{Score: Sign(winner)*WinScore + s.evaluate(b)}
		}
	}
	if turn >= game.Cells {
		return Result{Score: 0}
	}
	if depth >= s.MaxDepth {
		return Result{Score: s.evaluate(b)}
	}

	maximizing := isMaximizing(side)
	best := Result{Score: MaxScore}
	if maximizing {
		best.Score = MinScore
	}

	for _, m := range Candidates(b) {
		reply := s.probe(turn, depth, b, side, best.Score, m)

		// Equal to the bound also cuts: the opponent keeps its earlier choice.
		if reply.Score == bound || improves(maximizing, reply.Score, bound) {
			return Result{Score: reply.Score, Move: m, HasMove: true}
		}
		if improves(maximizing, reply.Score, best.Score) {
			best = Result{Score: reply.Score, Move: m, HasMove: true}
		}
	}
	return best
}

func (s *Searcher) probe(turn, depth int, b *game.Board, side game.Cell, bound Score, m game.Move) Result {
	b.Place(m, side)
	defer b.Clear(m)
	return s.Search(turn+1, depth+1, b, side.Opponent(), bound, &m)
}

func isMaximizing(side game.Cell) bool {
	return side == game.PlayerO
}

// improves reports whether score is strictly better than other for the mover.
func improves(maximizing bool, score, other Score) bool {
	if maximizing {
		return score > other
	}
	return score < other
}
