package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
	Http   HTTPConfig
}

type LogConfig struct {
	Level string
}

type HTTPConfig struct {
	Addr string
}

type EngineConfig struct {
	Level      int   // used when a request names neither level nor opponent
	Workers    int   // root search goroutines
	Seed       int64 // 0 seeds from the clock
	ThinkDelay time.Duration
}

func LoadConfig() (*Config, error) {
	level, err := envInt("ENGINE_LEVEL", 2)
	if err != nil {
		return nil, err
	}
	if level < 1 || level > 4 {
		return nil, fmt.Errorf("ENGINE_LEVEL must be between 1 and 4, got %d", level)
	}

	workers, err := envInt("ENGINE_WORKERS", 1)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("ENGINE_WORKERS must be at least 1, got %d", workers)
	}

	seed, err := envInt("ENGINE_SEED", 0)
	if err != nil {
		return nil, err
	}

	delayMs, err := envInt("BOT_THINK_DELAY_MS", 300)
	if err != nil {
		return nil, err
	}

	logLevel := envString("LOG_LEVEL", "release")
	if logLevel != "debug" && logLevel != "release" {
		return nil, fmt.Errorf("LOG_LEVEL must be debug or release, got %q", logLevel)
	}

	cfg := &Config{
		Logs: LogConfig{
			Level: logLevel,
		},
		Engine: EngineConfig{
			Level:      level,
			Workers:    workers,
			Seed:       int64(seed),
			ThinkDelay: time.Duration(delayMs) * time.Millisecond,
		},
		Http: HTTPConfig{
			Addr: envString("HTTP_ADDR", ":8080"),
		},
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error converting string to int: %s: %w", key, err)
	}
	return n, nil
}
