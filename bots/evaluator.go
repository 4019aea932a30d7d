package bots

// PositionEvaluator scores a position, positive values favouring White.
type PositionEvaluator interface {
	Evaluate(pos Position) int
}

var pieceWeights = [...]int{
	Pawn:   10,
	Knight: 30,
	Bishop: 30,
	Rook:   50,
	Queen:  90,
	King:   900,
}

// Weight is the material value of the piece kind.
func (k PieceKind) Weight() int {
	if k < Pawn || k > King {
		return 0
	}
	return pieceWeights[k]
}

// MaterialEvaluator sums piece weights: White adds, Black subtracts.
// Mobility, king safety and pawn structure are ignored.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(pos Position) int {
	var score int
	for sq := A1; sq <= H8; sq++ {
		p, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		if p.Color == White {
			score += p.Kind.Weight()
		} else {
			score -= p.Kind.Weight()
		}
	}
	return score
}

// Evaluate returns the material score of pos.
func Evaluate(pos Position) int {
	return MaterialEvaluator{}.Evaluate(pos)
}
