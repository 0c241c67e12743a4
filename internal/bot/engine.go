package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Five-In-A-Row/internal/game"
	"ctchen222/Five-In-A-Row/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// Engine picks the computer's moves. It is safe for concurrent use as long as
// each call gets its own board.
type Engine struct {
	maxDepth int
	cache    repository.SearchCache

	nodes     metric.Int64Counter
	duration  metric.Float64Histogram
	cacheHits metric.Int64Counter
}

type Option func(*Engine)

// WithCache stores and reuses search results.
func WithCache(cache repository.SearchCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// NewEngine creates an engine that searches maxDepth plies.
func NewEngine(maxDepth int, opts ...Option) (*Engine, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("invalid search depth %d", maxDepth)
	}
	e := &Engine{maxDepth: maxDepth}
	for _, opt := range opts {
		opt(e)
	}

	var err error
	if e.nodes, err = meter.Int64Counter("bot.search.nodes",
		metric.WithDescription("Positions visited by the search")); err != nil {
		return nil, fmt.Errorf("failed to create nodes counter: %w", err)
	}
	if e.duration, err = meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Time spent per search"), metric.WithUnit("ms")); err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}
	if e.cacheHits, err = meter.Int64Counter("bot.cache.hits",
		metric.WithDescription("Searches answered from the cache")); err != nil {
		return nil, fmt.Errorf("failed to create cache hit counter: %w", err)
	}
	return e, nil
}

// MaxDepth returns the configured search depth.
func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

// BestMove returns the move side should play on b after turn moves. An empty
// board gets the center without searching. b is borrowed for the duration of
// the call and handed back unchanged.
func (e *Engine) BestMove(ctx context.Context, b *game.Board, turn int, side game.Cell) Result {
	ctx, span := tracer.Start(ctx, "bot.BestMove", trace.WithAttributes(
		attribute.String("game.side", side.String()),
		attribute.Int("game.turn", turn),
		attribute.Int("search.depth", e.maxDepth),
	))
	defer span.End()

	if b.IsEmpty() {
		span.SetAttributes(attribute.Bool("search.opening", true))
		return Result{Score: 0, Move: game.Center, HasMove: true}
	}

	key := e.cacheKey(b, turn, side)
	if res, ok := e.lookup(ctx, key); ok {
		return res
	}

	start := time.Now()
	s := NewSearcher(e.maxDepth)
	res := s.Best(b, turn, side)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.Int("search.depth", e.maxDepth))
	e.nodes.Add(ctx, s.Nodes(), attrs)
	e.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	span.SetAttributes(
		attribute.Int64("search.nodes", s.Nodes()),
		attribute.Int64("search.score", int64(res.Score)),
	)

	slog.DebugContext(ctx, "search finished",
		"side", side.String(),
		"depth", e.maxDepth,
		"nodes", s.Nodes(),
		"score", int64(res.Score),
		"move", res.Move.String(),
		"has_move", res.HasMove,
		"elapsed", elapsed,
	)

	e.store(ctx, key, res)
	return res
}

// cacheKey includes turn: the search scores turn >= Cells as a draw.
func (e *Engine) cacheKey(b *game.Board, turn int, side game.Cell) string {
	return fmt.Sprintf("%d:%d:%s:%s", e.maxDepth, turn, side, b)
}

func (e *Engine) lookup(ctx context.Context, key string) (Result, bool) {
	if e.cache == nil {
		return Result{}, false
	}
	entry, found, err := e.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "search cache lookup failed", "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
		return Result{}, false
	}
	if !found {
		return Result{}, false
	}
	e.cacheHits.Add(ctx, 1)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("cache.hit", true))
	return Result{
		Score:   Score(entry.Score),
		Move:    game.Move{Row: entry.Row, Col: entry.Col},
		HasMove: entry.HasMove,
	}, true
}

func (e *Engine) store(ctx context.Context, key string, res Result) {
	if e.cache == nil {
		return
	}
	entry := repository.SearchEntry{
		Score:   int64(res.Score),
		Row:     res.Move.Row,
		Col:     res.Move.Col,
		HasMove: res.HasMove,
	}
	if err := e.cache.Set(ctx, key, entry); err != nil {
		slog.WarnContext(ctx, "search cache store failed", "error", err)
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store search result")
	}
}
