// bot.go
package bots

// Bot is anything that can answer a position with a move.
type Bot interface {
	BestMove(pos Position) (Move, error)
	Name() string
}

// NewBot returns the bot playing at level: random for level 1, search otherwise.
func NewBot(sel *MoveSelector, level Level) (Bot, error) {
	if !level.Valid() {
		return nil, ErrInvalidLevel
	}
	if level == LevelRandom {
		return NewRandomBot(sel), nil
	}
	return NewMinimaxBot(sel, level), nil
}
