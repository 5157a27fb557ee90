// config.go
//
// Runtime configuration for the solver command.
//
// Values come from the environment (optionally a .env file loaded by main)
// and can be overridden by command-line flags:
//
//   LOG_LEVEL        --log-level   zerolog level (default "warn")
//   LEXICON_FILE     --words       word list path; empty uses the bundled list
//   MIN_WORD_LENGTH  --min-length  shortest accepted word (default 4)
//   SOLVER_WORKERS   --workers     parallel workers; 0 means one per CPU
//   TYPE_DELAY_MS    --delay       pause between auto-typed words (default 750ms)
//   TYPE_COUNTDOWN   --countdown   pause before auto-typing starts (default 3s)

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellbee/internal/present"
	"github.com/robalobadob/spellbee/internal/solver"
)

// Config holds settings for one run of the command.
type Config struct {
	LogLevel  string
	WordsFile string
	MinLength int
	Workers   int
	TypeDelay time.Duration
	Countdown time.Duration

	// One-shot mode: letters are taken from flags instead of prompts.
	// Letters alone holds all seven with the center first; with Center set
	// it holds the other six.
	Center  string
	Letters string

	Once   bool // stop after the first puzzle
	NoType bool // never offer auto-typing
}

// loadConfig reads defaults from the environment.
func loadConfig() Config {
	return Config{
		LogLevel:  envStr("LOG_LEVEL", "warn"),
		WordsFile: envStr("LEXICON_FILE", ""),
		MinLength: envInt("MIN_WORD_LENGTH", solver.MinWordLength),
		Workers:   envInt("SOLVER_WORKERS", 0),
		TypeDelay: time.Duration(envInt("TYPE_DELAY_MS", int(present.DefaultWordDelay/time.Millisecond))) * time.Millisecond,
		Countdown: envDuration("TYPE_COUNTDOWN", 3*time.Second),
	}
}

// oneShot reports whether letters were supplied up front.
func (c Config) oneShot() bool { return c.Center != "" || c.Letters != "" }

// setupLogging configures the global zerolog logger for console use.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// envStr returns the value of k or def if unset/empty.
func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an integer, falling back to def.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer env value")
	}
	return def
}

// envDuration parses k as a time.Duration ("3s", "500ms"), falling back to def.
func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring invalid duration env value")
	}
	return def
}
