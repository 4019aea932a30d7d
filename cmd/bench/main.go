package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chessai/bots"

	"github.com/pkg/profile"
)

func main() {
	fen := flag.String("fen", "", "position to search, default is the starting position")
	level := flag.Int("level", 4, "strength level 1-4")
	workers := flag.Int("workers", 1, "root search goroutines")
	seed := flag.Int64("seed", 0, "shuffle seed, 0 seeds from the clock")
	prof := flag.String("profile", "", "cpu or mem")
	flag.Parse()

	board, lvl, err := setup(*fen, *level)
	if err != nil {
		log.Fatal(err)
	}

	// the profiler starts last so a fatal exit above never skips Stop
	switch *prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile %q", *prof)
	}

	sel := bots.NewMoveSelector(*seed)
	sel.Workers = *workers

	start := time.Now()
	res, err := sel.Select(board, lvl)
	if err != nil {
		log.Printf("select: %v", err)
		return
	}
	elapsed := time.Since(start)

	fmt.Println("position", board)
	fmt.Println("bestmove", res.Move, "score", res.Score, "nodes", res.Stats.Nodes,
		"leaves", res.Stats.Leaves, "cutoffs", res.Stats.Cutoffs, "time", elapsed)
}

// setup validates the arguments before any profile is started.
func setup(fen string, level int) (*bots.Board, bots.Level, error) {
	board := bots.NewBoard()
	if fen != "" {
		var err error
		if board, err = bots.ParseFEN(fen); err != nil {
			return nil, 0, err
		}
	}
	lvl := bots.Level(level)
	if !lvl.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", bots.ErrInvalidLevel, level)
	}
	if len(board.LegalMoves()) == 0 {
		return nil, 0, fmt.Errorf("%w: %s", bots.ErrNoLegalMoves, board)
	}
	return board, lvl, nil
}
