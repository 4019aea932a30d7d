package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"chessai/bots"

	"github.com/gin-gonic/gin"
)

// Handler serves move requests from one shared selector.
type Handler struct {
	Selector     *bots.MoveSelector
	DefaultLevel bots.Level
}

type moveRequest struct {
	FEN      string `json:"fen"`
	Level    *int   `json:"level"`
	Opponent string `json:"opponent"`
}

type moveResponse struct {
	Move      bots.Move `json:"move"`
	Score     int       `json:"score"`
	Scored    bool      `json:"scored"`
	Capture   bool      `json:"capture"`
	Check     bool      `json:"check"`
	FEN       string    `json:"fen"`
	GameOver  bool      `json:"game_over"`
	Checkmate bool      `json:"checkmate"`
	Draw      bool      `json:"draw"`
	Nodes     int       `json:"nodes"`
}

type evaluateRequest struct {
	FEN string `json:"fen"`
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Opponents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"opponents": bots.Opponents()})
}

// Move answers the position in the request with the engine's reply.
func (h *Handler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := h.DefaultLevel
	switch {
	case req.Opponent != "":
		o, ok := bots.OpponentByID(req.Opponent)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown opponent " + req.Opponent})
			return
		}
		level = o.Level
	case req.Level != nil:
		level = bots.Level(*req.Level)
	}

	board, err := boardFromFEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	res, err := h.Selector.Select(board, level)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	applied, err := board.Apply(res.Move)
	if err != nil {
		log.Printf("apply selected move %s: %v", res.Move, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("level %d: %s score=%d nodes=%d in %s", level, res.Move, res.Score, res.Stats.Nodes, time.Since(start))

	c.JSON(http.StatusOK, moveResponse{
		Move:      res.Move,
		Score:     res.Score,
		Scored:    res.Scored,
		Capture:   applied.Capture,
		Check:     applied.Check,
		FEN:       board.String(),
		GameOver:  board.IsGameOver(),
		Checkmate: board.IsCheckmate(),
		Draw:      board.IsDraw(),
		Nodes:     res.Stats.Nodes,
	})
}

// Evaluate returns the material score of a position, positive for White.
func (h *Handler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	board, err := boardFromFEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": bots.Evaluate(board)})
}

func boardFromFEN(fen string) (*bots.Board, error) {
	if fen == "" {
		return bots.NewBoard(), nil
	}
	return bots.ParseFEN(fen)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bots.ErrInvalidLevel), errors.Is(err, bots.ErrInvalidFEN):
		return http.StatusBadRequest
	case errors.Is(err, bots.ErrNoLegalMoves):
		return http.StatusConflict
	default:
		log.Printf("select move: %v", err)
		return http.StatusInternalServerError
	}
}
