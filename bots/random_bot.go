package bots

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	sel *MoveSelector
}

func NewRandomBot(sel *MoveSelector) *RandomBot {
	return &RandomBot{sel: sel}
}

func (b *RandomBot) BestMove(pos Position) (Move, error) {
	return b.sel.SelectMove(pos, LevelRandom)
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
