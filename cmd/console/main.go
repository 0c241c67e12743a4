// Command console plays five in a row in the terminal: you are X and move
// first, the engine answers as O.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ctchen222/Five-In-A-Row/internal/bot"
	"ctchen222/Five-In-A-Row/internal/game"
	"ctchen222/Five-In-A-Row/internal/logger"
)

func main() {
	depth := flag.Int("depth", bot.DefaultMaxDepth, "search depth in plies")
	verbose := flag.Bool("v", false, "log engine statistics")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger.Init(level)

	engine, err := bot.NewEngine(*depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := play(context.Background(), engine, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(ctx context.Context, engine *bot.Engine, in io.Reader, out io.Writer) error {
	g := game.NewGame()
	scanner := bufio.NewScanner(in)

	for !g.IsOver() {
		printBoard(out, &g.Board)

		if g.CurrentTurn == game.PlayerO {
			fmt.Fprintln(out, "thinking...")
			res := engine.BestMove(ctx, &g.Board, g.Turn, game.PlayerO)
			if !res.HasMove {
				break
			}
			if err := g.Move(res.Move.Row, res.Move.Col); err != nil {
				return fmt.Errorf("engine played an illegal move %v: %w", res.Move, err)
			}
			continue
		}

		fmt.Fprint(out, "your move (row col): ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		var row, col int
		if _, err := fmt.Sscan(strings.TrimSpace(scanner.Text()), &row, &col); err != nil {
			fmt.Fprintln(out, "enter two numbers, e.g. 7 7")
			continue
		}
		if err := g.Move(row, col); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	printBoard(out, &g.Board)
	switch {
	case g.Winner == game.PlayerX:
		fmt.Fprintln(out, "YOU WIN")
	case g.Winner == game.PlayerO:
		fmt.Fprintln(out, "YOU LOSE")
	default:
		fmt.Fprintln(out, "DRAW")
	}
	return nil
}

func printBoard(out io.Writer, b *game.Board) {
	fmt.Fprint(out, "   ")
	for c := 0; c < game.BoardSize; c++ {
		fmt.Fprintf(out, "%x", c)
	}
	fmt.Fprintln(out)
	for r, row := range b.Rows() {
		fmt.Fprintf(out, "%2d %s\n", r, row)
	}
}
