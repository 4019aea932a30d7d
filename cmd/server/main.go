package main

import (
	"log"

	"chessai/bots"
	"chessai/config"
	"chessai/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	sel := bots.NewMoveSelector(cfg.Engine.Seed)
	sel.Workers = cfg.Engine.Workers
	h := &server.Handler{Selector: sel, DefaultLevel: bots.Level(cfg.Engine.Level)}

	router := server.NewRouter(h, cfg.Logs.Level == "debug")
	log.Printf("listening on %s (default level %d, %d workers)", cfg.Http.Addr, cfg.Engine.Level, cfg.Engine.Workers)
	if err := router.Run(cfg.Http.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
