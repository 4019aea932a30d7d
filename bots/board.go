package bots

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Board is a Position backed by notnil/chess. Positions from that package
// are immutable, so Apply pushes the successor and Undo pops it.
type Board struct {
	history []*chess.Position
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	return &Board{history: []*chess.Position{chess.NewGame().Position()}}
}

// ParseFEN builds a board from a FEN string.
func ParseFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return &Board{history: []*chess.Position{chess.NewGame(opt).Position()}}, nil
}

func (b *Board) top() *chess.Position {
	return b.history[len(b.history)-1]
}

func (b *Board) Turn() Color {
	if b.top().Turn() == chess.Black {
		return Black
	}
	return White
}

func (b *Board) LegalMoves() []Move {
	valid := b.top().ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = Move(m.String())
	}
	return moves
}

// Apply plays m if it is legal in the current position.
func (b *Board) Apply(m Move) (MoveResult, error) {
	pos := b.top()
	for _, vm := range pos.ValidMoves() {
		if vm.String() != string(m) {
			continue
		}
		b.history = append(b.history, pos.Update(vm))
		return MoveResult{
			Move:    m,
			Capture: vm.HasTag(chess.Capture) || vm.HasTag(chess.EnPassant),
			Check:   vm.HasTag(chess.Check),
		}, nil
	}
	return MoveResult{}, fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, pos)
}

func (b *Board) Undo() error {
	if len(b.history) < 2 {
		return ErrNothingToUndo
	}
	b.history[len(b.history)-1] = nil
	b.history = b.history[:len(b.history)-1]
	return nil
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.top().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return Piece{}, false
	}
	var kind PieceKind
	switch p.Type() {
	case chess.Pawn:
		kind = Pawn
	case chess.Knight:
		kind = Knight
	case chess.Bishop:
		kind = Bishop
	case chess.Rook:
		kind = Rook
	case chess.Queen:
		kind = Queen
	case chess.King:
		kind = King
	default:
		return Piece{}, false
	}
	color := White
	if p.Color() == chess.Black {
		color = Black
	}
	return Piece{Kind: kind, Color: color}, true
}

// IsGameOver reports checkmate, stalemate or a draw.
func (b *Board) IsGameOver() bool {
	return b.top().Status() != chess.NoMethod || b.drawn()
}

// IsDraw reports stalemate, insufficient material, threefold repetition
// or the fifty-move rule.
func (b *Board) IsDraw() bool {
	return b.top().Status() == chess.Stalemate || b.drawn()
}

func (b *Board) drawn() bool {
	pos := b.top()
	if pos.HalfMoveClock() >= 100 || b.repetitions() >= 3 {
		return true
	}
	opt, err := chess.FEN(pos.String())
	if err != nil {
		return false
	}
	return chess.NewGame(opt).Method() == chess.InsufficientMaterial
}

// repetitions counts the positions in the history that match the current one
// on placement, turn, castling rights and en passant square.
func (b *Board) repetitions() int {
	key := repetitionKey(b.top())
	n := 0
	for _, pos := range b.history {
		if repetitionKey(pos) == key {
			n++
		}
	}
	return n
}

func repetitionKey(pos *chess.Position) string {
	fields := strings.Fields(pos.String())
	return strings.Join(fields[:4], " ")
}

func (b *Board) IsCheckmate() bool {
	return b.top().Status() == chess.Checkmate
}

// Clone detaches the current position from the undo history. The copy is
// rebuilt from FEN so no cached state is shared between goroutines.
func (b *Board) Clone() Position {
	opt, err := chess.FEN(b.String())
	if err != nil {
		// a FEN produced by notnil/chess always decodes
		panic(fmt.Sprintf("bots: clone %s: %v", b, err))
	}
	return &Board{history: []*chess.Position{chess.NewGame(opt).Position()}}
}

// String returns the FEN of the current position.
func (b *Board) String() string {
	return b.top().String()
}
