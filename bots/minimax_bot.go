package bots

import (
	"fmt"
	"log"
	"time"
)

type MinimaxBot struct {
	Level Level
	// Verbose logs every decision.
	Verbose bool

	sel *MoveSelector
}

func NewMinimaxBot(sel *MoveSelector, level Level) *MinimaxBot {
	return &MinimaxBot{Level: level, sel: sel}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Level.Depth())
}

func (b *MinimaxBot) BestMove(pos Position) (Move, error) {
	start := time.Now()
	res, err := b.sel.Select(pos, b.Level)
	if err != nil {
		return "", err
	}
	if b.Verbose {
		log.Printf("%s: %s score=%d nodes=%d cutoffs=%d in %s",
			b.Name(), res.Move, res.Score, res.Stats.Nodes, res.Stats.Cutoffs, time.Since(start))
	}
	return res.Move, nil
}
