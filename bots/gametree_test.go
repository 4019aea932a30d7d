package bots

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// treeNode is a node of a synthetic game tree. value is the White-positive
// static score used when the node is evaluated.
type treeNode struct {
	value    int
	children []*treeNode
}

// treePosition walks a treeNode graph through the Position contract so the
// search can be checked on arbitrary trees.
type treePosition struct {
	path     []*treeNode
	moves    []Move
	rootTurn Color
	reject   map[*treeNode]bool
}

func newTreePosition(root *treeNode, turn Color) *treePosition {
	return &treePosition{path: []*treeNode{root}, rootTurn: turn}
}

func (p *treePosition) node() *treeNode { return p.path[len(p.path)-1] }

func (p *treePosition) Turn() Color {
	if (len(p.path)-1)%2 == 0 {
		return p.rootTurn
	}
	return p.rootTurn.Other()
}

func (p *treePosition) LegalMoves() []Move {
	n := p.node()
	moves := make([]Move, len(n.children))
	for i := range n.children {
		moves[i] = Move(strconv.Itoa(i))
	}
	return moves
}

func (p *treePosition) Apply(m Move) (MoveResult, error) {
	i, err := strconv.Atoi(string(m))
	n := p.node()
	if err != nil || i < 0 || i >= len(n.children) || p.reject[n.children[i]] {
		return MoveResult{}, fmt.Errorf("tree: cannot play %q", m)
	}
	p.path = append(p.path, n.children[i])
	p.moves = append(p.moves, m)
	return MoveResult{Move: m}, nil
}

func (p *treePosition) Undo() error {
	if len(p.path) < 2 {
		return ErrNothingToUndo
	}
	p.path = p.path[:len(p.path)-1]
	p.moves = p.moves[:len(p.moves)-1]
	return nil
}

func (p *treePosition) PieceAt(Square) (Piece, bool) { return Piece{}, false }
func (p *treePosition) IsGameOver() bool             { return len(p.node().children) == 0 }
func (p *treePosition) IsCheckmate() bool            { return false }

func (p *treePosition) Clone() Position {
	return &treePosition{
		path:     append([]*treeNode(nil), p.path...),
		moves:    append([]Move(nil), p.moves...),
		rootTurn: p.rootTurn,
		reject:   p.reject,
	}
}

func (p *treePosition) String() string {
	parts := make([]string, len(p.moves))
	for i, m := range p.moves {
		parts[i] = string(m)
	}
	return "/" + strings.Join(parts, "/")
}

type treeEvaluator struct{}

func (treeEvaluator) Evaluate(pos Position) int {
	return pos.(*treePosition).node().value
}

// randomTree builds a tree of the given height with 1-4 children per node.
// Some inner nodes are left childless to stand in for mates and stalemates.
func randomTree(rng *rand.Rand, height int) *treeNode {
	n := &treeNode{value: rng.Intn(201) - 100}
	if height == 0 || rng.Intn(10) == 0 {
		return n
	}
	kids := 1 + rng.Intn(4)
	for i := 0; i < kids; i++ {
		n.children = append(n.children, randomTree(rng, height-1))
	}
	return n
}

// plainMinimax is an unpruned reference search with the same leaf rules.
func plainMinimax(eval PositionEvaluator, pos Position, depth int, maximizing bool, persp Color) int {
	leaf := func() int {
		s := eval.Evaluate(pos)
		if persp == Black {
			s = -s
		}
		return s
	}
	if depth == 0 {
		return leaf()
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return leaf()
	}
	best := MaxScore
	if maximizing {
		best = MinScore
	}
	for _, m := range moves {
		if _, err := pos.Apply(m); err != nil {
			panic(err)
		}
		v := plainMinimax(eval, pos, depth-1, !maximizing, persp)
		if err := pos.Undo(); err != nil {
			panic(err)
		}
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}
