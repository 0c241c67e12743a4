package service

import (
	"context"
	"errors"
	"fmt"

	"ctchen222/Five-In-A-Row/internal/api/models"
	"ctchen222/Five-In-A-Row/internal/bot"
	"ctchen222/Five-In-A-Row/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=engine_service.go -destination=mock_engine_service.go -package=service

var tracer = otel.Tracer("api.service")

var (
	// ErrGameFinished is returned when a position already holds five in a row.
	ErrGameFinished = errors.New("position already has a winner")
	// ErrEmptyLastMove is returned when the last move points at an empty cell.
	ErrEmptyLastMove = errors.New("last move points at an empty cell")
)

// EngineService exposes the engine to HTTP handlers.
type EngineService interface {
	BestMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error)
	Winner(ctx context.Context, req *models.WinnerRequest) (*models.WinnerResponse, error)
	Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluateResponse, error)
}

type engineService struct {
	engine *bot.Engine
}

// NewEngineService creates a new EngineService.
func NewEngineService(engine *bot.Engine) EngineService {
	return &engineService{engine: engine}
}

// BestMove searches a position supplied by the client. Positions that are
// already won are rejected because the search only checks the moves it plays.
func (s *engineService) BestMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error) {
	ctx, span := tracer.Start(ctx, "EngineService.BestMove")
	defer span.End()

	board, turn, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}
	side, err := game.ParseCell(req.Next)
	if err != nil || side == game.Empty {
		return nil, fmt.Errorf("%w: next must be X or O", game.ErrInvalidBoard)
	}
	if winner := game.FindWinner(board); winner != game.NoWinner {
		span.SetAttributes(attribute.String("game.winner", winner.String()))
		return nil, ErrGameFinished
	}

	res := s.engine.BestMove(ctx, board, turn, side)
	span.SetAttributes(attribute.Bool("search.has_move", res.HasMove))

	return &models.MoveResponse{
		Row:     res.Move.Row,
		Col:     res.Move.Col,
		Score:   int64(res.Score),
		HasMove: res.HasMove,
	}, nil
}

// Winner checks whether the last move completed five in a row.
func (s *engineService) Winner(ctx context.Context, req *models.WinnerRequest) (*models.WinnerResponse, error) {
	_, span := tracer.Start(ctx, "EngineService.Winner", trace.WithAttributes(
		attribute.IntSlice("move.position", req.LastMove),
	))
	defer span.End()

	board, turn, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}
	if len(req.LastMove) != 2 || !game.InBounds(req.LastMove[0], req.LastMove[1]) {
		return nil, game.ErrOutOfBounds
	}
	last := game.Move{Row: req.LastMove[0], Col: req.LastMove[1]}
	if board.At(last) == game.Empty {
		return nil, ErrEmptyLastMove
	}

	winner := game.CheckWin(board, last)
	return &models.WinnerResponse{
		Winner: winner.String(),
		Draw:   winner == game.NoWinner && turn >= game.Cells,
	}, nil
}

// Evaluate returns the static score of the board.
func (s *engineService) Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluateResponse, error) {
	_, span := tracer.Start(ctx, "EngineService.Evaluate")
	defer span.End()

	board, _, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}
	return &models.EvaluateResponse{Score: int64(bot.Evaluate(board))}, nil
}
