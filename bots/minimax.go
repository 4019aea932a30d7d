package bots

import (
	"errors"
	"fmt"
	"math"
)

// Bounds of the search window. Kept inside int32 so negation never overflows.
const (
	MaxScore = math.MaxInt32
	MinScore = -MaxScore
)

// Stats counts the work done by one search call.
type Stats struct {
	Nodes     int
	Leaves    int
	Terminals int
	Cutoffs   int
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	s.Terminals += o.Terminals
	s.Cutoffs += o.Cutoffs
}

type searcher struct {
	eval PositionEvaluator
	// side whose point of view leaf scores are reported from
	persp Color
	stats Stats
}

func newSearcher(eval PositionEvaluator, persp Color) *searcher {
	if eval == nil {
		eval = MaterialEvaluator{}
	}
	return &searcher{eval: eval, persp: persp}
}

// perspective returns the root mover implied by a node: the side to move
// when maximizing, its opponent otherwise.
func perspective(pos Position, maximizing bool) Color {
	if maximizing {
		return pos.Turn()
	}
	return pos.Turn().Other()
}

// Search returns the alpha-beta minimax value of pos to depth plies, scored
// for the root mover. maximizing is true when the root mover is to move at
// pos. pos is restored before Search returns, error or not.
func Search(pos Position, depth, alpha, beta int, maximizing bool) (int, error) {
	score, _, err := SearchWith(MaterialEvaluator{}, pos, depth, alpha, beta, maximizing)
	return score, err
}

// SearchWith is Search with a custom evaluator, also reporting Stats.
func SearchWith(eval PositionEvaluator, pos Position, depth, alpha, beta int, maximizing bool) (int, Stats, error) {
	s := newSearcher(eval, perspective(pos, maximizing))
	score, err := s.alphaBeta(pos, depth, alpha, beta, maximizing)
	return score, s.stats, err
}

func (s *searcher) leaf(pos Position) int {
	s.stats.Leaves++
	score := s.eval.Evaluate(pos)
	if s.persp == Black {
		score = -score
	}
	return score
}

func (s *searcher) alphaBeta(pos Position, depth, alpha, beta int, maximizing bool) (int, error) {
	s.stats.Nodes++
	if depth <= 0 {
		return s.leaf(pos), nil
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		// Checkmate and stalemate score as plain material.
		s.stats.Terminals++
		return s.leaf(pos), nil
	}

	if maximizing {
		best := MinScore
		for _, m := range moves {
			score, err := s.child(pos, m, depth-1, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return best, nil
	}

	best := MaxScore
	for _, m := range moves {
		score, err := s.child(pos, m, depth-1, alpha, beta, true)
		if err != nil {
			return 0, err
		}
		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best, nil
}

// child applies m, searches the successor and undoes m.
func (s *searcher) child(pos Position, m Move, depth, alpha, beta int, maximizing bool) (int, error) {
	if _, err := pos.Apply(m); err != nil {
		if !errors.Is(err, ErrIllegalMove) {
			err = fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
		return 0, fmt.Errorf("search %s: %w", m, err)
	}
	score, err := s.alphaBeta(pos, depth, alpha, beta, maximizing)
	if uerr := pos.Undo(); uerr != nil && err == nil {
		err = fmt.Errorf("undo %s: %w", m, uerr)
	}
	return score, err
}
