package bots

import "errors"

var (
	// ErrNoLegalMoves is returned when a move is requested for a finished game.
	ErrNoLegalMoves = errors.New("bots: no legal moves")

	// ErrIllegalMove means the rules engine rejected a move, usually one it
	// had just enumerated as legal.
	ErrIllegalMove = errors.New("bots: illegal move")

	ErrInvalidLevel = errors.New("bots: invalid level")

	ErrNothingToUndo = errors.New("bots: nothing to undo")

	ErrInvalidFEN = errors.New("bots: invalid FEN")
)
