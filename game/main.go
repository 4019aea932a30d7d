package main

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"chessai/bots"
	"chessai/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	squareSize   = 80
	boardOffsetX = 20
	boardOffsetY = 60
	screenWidth  = squareSize*8 + 2*boardOffsetX
	screenHeight = squareSize*8 + boardOffsetY + 60
)

var (
	lightSquare    = color.RGBA{240, 217, 181, 255}
	darkSquare     = color.RGBA{181, 136, 99, 255}
	selectedSquare = color.RGBA{246, 246, 105, 255}
	lastMoveSquare = color.RGBA{205, 210, 106, 255}
)

type Game struct {
	board       *bots.Board
	selector    *bots.MoveSelector
	opponents   []bots.Opponent
	current     int
	thinkDelay  time.Duration
	selected    bots.Square
	hasSelected bool
	lastFrom    bots.Square
	lastTo      bots.Square
	lastMove    string
	botThinking bool
	mu          sync.Mutex

	light, dark, highlight, last *ebiten.Image
}

func NewGame(cfg *config.Config) *Game {
	sel := bots.NewMoveSelector(cfg.Engine.Seed)
	sel.Workers = cfg.Engine.Workers

	g := &Game{
		board:      bots.NewBoard(),
		selector:   sel,
		opponents:  bots.Opponents(),
		thinkDelay: cfg.Engine.ThinkDelay,
		lastFrom:   -1,
		lastTo:     -1,
	}
	for i, o := range g.opponents {
		if int(o.Level) == cfg.Engine.Level {
			g.current = i
		}
	}
	g.light = squareImage(lightSquare)
	g.dark = squareImage(darkSquare)
	g.highlight = squareImage(selectedSquare)
	g.last = squareImage(lastMoveSquare)
	return g
}

func squareImage(clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(squareSize, squareSize)
	img.Fill(clr)
	return img
}

func (g *Game) opponent() bots.Opponent {
	return g.opponents[g.current]
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !g.botThinking {
		g.board = bots.NewBoard()
		g.hasSelected = false
		g.lastFrom, g.lastTo, g.lastMove = -1, -1, ""
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) && !g.botThinking {
		g.current = (g.current + 1) % len(g.opponents)
	}

	if g.botThinking || g.board.IsGameOver() || g.board.Turn() != bots.White {
		return nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	sq, ok := squareAt(ebiten.CursorPosition())
	if !ok {
		return nil
	}
	if p, own := g.board.PieceAt(sq); own && p.Color == bots.White {
		g.selected, g.hasSelected = sq, true
		return nil
	}
	if !g.hasSelected {
		return nil
	}
	g.hasSelected = false

	// promotion is always to a queen
	move := bots.NewMove(g.selected, sq)
	if p, ok := g.board.PieceAt(g.selected); ok && p.Kind == bots.Pawn && sq.Rank() == 7 {
		move = bots.NewMove(g.selected, sq, bots.Queen)
	}
	res, err := g.board.Apply(move)
	if err != nil {
		return nil
	}
	g.record(g.selected, sq, res)

	if !g.board.IsGameOver() {
		g.botThinking = true
		go g.makeBotMove(g.board, g.opponent())
	}
	return nil
}

func (g *Game) record(from, to bots.Square, res bots.MoveResult) {
	g.lastFrom, g.lastTo = from, to
	g.lastMove = string(res.Move)
	if res.Capture {
		g.lastMove += " (capture)"
	}
	if res.Check {
		g.lastMove += "+"
	}
}

// makeBotMove searches a private copy so drawing never sees a half-applied move.
func (g *Game) makeBotMove(board *bots.Board, opp bots.Opponent) {
	time.Sleep(g.thinkDelay)

	g.mu.Lock()
	pos := board.Clone()
	g.mu.Unlock()

	var m bots.Move
	bot, err := bots.NewBot(g.selector, opp.Level)
	if err == nil {
		if mb, ok := bot.(*bots.MinimaxBot); ok {
			mb.Verbose = true
		}
		m, err = bot.BestMove(pos)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.botThinking = false
	if err != nil {
		log.Printf("Bot move error: %v", err)
		return
	}
	from, to := moveSquares(m)
	applied, err := g.board.Apply(m)
	if err != nil {
		log.Printf("Bot move error: %v", err)
		return
	}
	log.Printf("%s (level %d) played %s", opp.Name, opp.Level, m)
	g.record(from, to, applied)
}

func moveSquares(m bots.Move) (bots.Square, bots.Square) {
	s := string(m)
	if len(s) < 4 {
		return -1, -1
	}
	from := bots.NewSquare(int(s[0]-'a'), int(s[1]-'1'))
	to := bots.NewSquare(int(s[2]-'a'), int(s[3]-'1'))
	return from, to
}

func squareAt(x, y int) (bots.Square, bool) {
	x -= boardOffsetX
	y -= boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return 0, false
	}
	return bots.NewSquare(x/squareSize, 7-y/squareSize), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := bots.NewSquare(file, rank)
			img := g.light
			if (file+rank)%2 == 0 {
				img = g.dark
			}
			switch {
			case g.hasSelected && sq == g.selected:
				img = g.highlight
			case sq == g.lastFrom || sq == g.lastTo:
				img = g.last
			}
			x := file*squareSize + boardOffsetX
			y := (7-rank)*squareSize + boardOffsetY
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)

			if p, ok := g.board.PieceAt(sq); ok {
				ebitenutil.DebugPrintAt(screen, p.Symbol(), x+squareSize/2-3, y+squareSize/2-8)
			}
		}
	}

	opp := g.opponent()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Opponent: %s (%s, level %d)  [B] switch  [R] restart",
		opp.Name, opp.Title, opp.Level), boardOffsetX, 10)

	status := "Your move"
	switch {
	case g.board.IsCheckmate() && g.board.Turn() == bots.White:
		status = opp.Name + " wins by checkmate"
	case g.board.IsCheckmate():
		status = "Checkmate, you win"
	case g.board.IsDraw():
		status = "Draw"
	case g.botThinking:
		status = opp.Name + " is thinking..."
	}
	ebitenutil.DebugPrintAt(screen, status, boardOffsetX, 30)
	if g.lastMove != "" {
		ebitenutil.DebugPrintAt(screen, "Last move: "+g.lastMove, boardOffsetX, screenHeight-40)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Chess AI")
	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
