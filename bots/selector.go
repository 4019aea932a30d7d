package bots

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Level is the opponent strength, 1 (random) to 4 (four plies).
type Level int

const (
	LevelRandom Level = 1
	MinLevel    Level = 1
	MaxLevel    Level = 4
)

func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Depth is the search depth in plies; zero means no search.
func (l Level) Depth() int {
	switch l {
	case 2:
		return 2
	case 3:
		return 3
	case 4:
		return 4
	}
	return 0
}

// SearchResult is the selected move with the score backing it. Scored is
// false when no search ran (level 1 or the first-move fallback).
type SearchResult struct {
	Move   Move
	Score  int
	Scored bool
	Stats  Stats
}

// MoveSelector picks moves according to a Level. The random source is the
// only state and is guarded, so one selector may serve many goroutines.
type MoveSelector struct {
	Evaluator PositionEvaluator
	// Workers > 1 searches root moves in parallel on cloned positions.
	Workers int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMoveSelector returns a selector seeded with seed, or from the clock
// when seed is zero.
func NewMoveSelector(seed int64) *MoveSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MoveSelector{
		Evaluator: MaterialEvaluator{},
		Workers:   1,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SelectMove picks a move for the side to move with a clock-seeded selector.
func SelectMove(pos Position, level Level) (Move, error) {
	return NewMoveSelector(0).SelectMove(pos, level)
}

func (ms *MoveSelector) SelectMove(pos Position, level Level) (Move, error) {
	res, err := ms.Select(pos, level)
	if err != nil {
		return "", err
	}
	return res.Move, nil
}

// Select returns the chosen move and, for search levels, its score.
func (ms *MoveSelector) Select(pos Position, level Level) (SearchResult, error) {
	if !level.Valid() {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}

	if level == LevelRandom {
		return SearchResult{Move: moves[ms.intn(len(moves))]}, nil
	}

	candidates := make([]Move, len(moves))
	copy(candidates, moves)
	ms.shuffle(candidates)

	var (
		scores []int
		stats  Stats
		err    error
	)
	if ms.Workers > 1 {
		scores, stats, err = ms.scoreParallel(pos, candidates, level.Depth())
	} else {
		scores, stats, err = ms.scoreSequential(pos, candidates, level.Depth())
	}
	if err != nil {
		return SearchResult{}, err
	}

	best := SearchResult{Score: MinScore, Stats: stats}
	for i, score := range scores {
		// strictly greater keeps the earliest move of the shuffled order
		if score > best.Score {
			best.Move, best.Score, best.Scored = candidates[i], score, true
		}
	}
	if !best.Scored {
		return SearchResult{Move: moves[0], Stats: stats}, nil
	}
	return best, nil
}

func (ms *MoveSelector) scoreSequential(pos Position, candidates []Move, depth int) ([]int, Stats, error) {
	s := newSearcher(ms.Evaluator, pos.Turn())
	scores := make([]int, len(candidates))
	for i, m := range candidates {
		score, err := s.child(pos, m, depth-1, MinScore, MaxScore, false)
		if err != nil {
			return nil, s.stats, err
		}
		scores[i] = score
	}
	return scores, s.stats, nil
}

func (ms *MoveSelector) scoreParallel(pos Position, candidates []Move, depth int) ([]int, Stats, error) {
	scores := make([]int, len(candidates))
	stats := make([]Stats, len(candidates))

	var g errgroup.Group
	g.SetLimit(ms.Workers)
	for i, m := range candidates {
		i, m := i, m
		own := pos.Clone()
		g.Go(func() error {
			s := newSearcher(ms.Evaluator, own.Turn())
			score, err := s.child(own, m, depth-1, MinScore, MaxScore, false)
			scores[i], stats[i] = score, s.stats
			return err
		})
	}
	err := g.Wait()

	var total Stats
	for _, st := range stats {
		total.add(st)
	}
	if err != nil {
		return nil, total, err
	}
	return scores, total, nil
}

func (ms *MoveSelector) intn(n int) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.lockedRand().Intn(n)
}

func (ms *MoveSelector) shuffle(moves []Move) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lockedRand().Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}

// lockedRand lazily seeds a zero-value selector. Callers hold mu.
func (ms *MoveSelector) lockedRand() *rand.Rand {
	if ms.rng == nil {
		ms.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ms.rng
}
