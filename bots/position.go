package bots

import "fmt"

// Color is the side owning a piece or having the move.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind enumerates the six chess piece types.
type PieceKind int8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceSymbols = [...]string{Pawn: "p", Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k"}

func (k PieceKind) String() string {
	if k < Pawn || k > King {
		return "?"
	}
	return pieceSymbols[k]
}

// Piece is an occupied square's content.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Symbol returns the FEN letter of the piece, upper case for White.
func (p Piece) Symbol() string {
	s := p.Kind.String()
	if p.Color == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// Square indexes the board from A1 (0) to H8 (63), file-major within a rank.
type Square int8

const (
	A1 Square = 0
	H8 Square = 63
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Move identifies one ply in UCI long algebraic form, e.g. "e2e4" or "a7a8q".
type Move string

// NewMove builds a UCI move token. Promotion is ignored unless it is a
// knight, bishop, rook or queen.
func NewMove(from, to Square, promo ...PieceKind) Move {
	m := from.String() + to.String()
	if len(promo) > 0 && promo[0] >= Knight && promo[0] <= Queen {
		m += promo[0].String()
	}
	return Move(m)
}

// MoveResult describes an applied move for calling layers (sound, dialogue).
type MoveResult struct {
	Move    Move
	Capture bool
	Check   bool
}

// Position is the rules-engine contract consumed by the search. Apply and
// Undo mutate in place and must be strictly LIFO.
type Position interface {
	Turn() Color
	LegalMoves() []Move
	Apply(m Move) (MoveResult, error)
	Undo() error
	PieceAt(sq Square) (Piece, bool)
	IsGameOver() bool
	IsCheckmate() bool
	// Clone returns an independent copy of the current state.
	Clone() Position
	// String serializes the current state (FEN for chess boards).
	String() string
}
