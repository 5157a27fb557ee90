// main.go
//
// Entry point for the Spelling Bee solver.
//
// Startup:
//   1. Load .env (if present) and read configuration.
//   2. Load the lexicon once; a missing or unusable word list is fatal.
//   3. Prompt for puzzles in a loop, or solve the one given by flags.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/spellbee/internal/lexicon"
	"github.com/robalobadob/spellbee/internal/present"
	"github.com/robalobadob/spellbee/internal/prompt"
	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
	"github.com/robalobadob/spellbee/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("spellbee exited")
	}
}

func newRootCmd() *cobra.Command {
	cfg := loadConfig()

	cmd := &cobra.Command{
		Use:           "spellbee",
		Short:         "find and rank every word for a Spelling Bee puzzle",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "newline-delimited word list (default: bundled list)")
	f.IntVar(&cfg.MinLength, "min-length", cfg.MinLength, "minimum word length (at least 4)")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = one per CPU)")
	f.DurationVar(&cfg.TypeDelay, "delay", cfg.TypeDelay, "pause between auto-typed words")
	f.DurationVar(&cfg.Countdown, "countdown", cfg.Countdown, "pause before auto-typing starts")
	f.StringVar(&cfg.Center, "center", "", "center letter (skips the prompts)")
	f.StringVar(&cfg.Letters, "letters", "", "other six letters, or all seven center-first when --center is unset")
	f.BoolVar(&cfg.Once, "once", false, "exit after the first puzzle")
	f.BoolVar(&cfg.NoType, "no-type", false, "never offer to auto-type the words")

	return cmd
}

// run loads the lexicon and drives the session.
func run(ctx context.Context, cfg Config) error {
	lex, err := lexicon.Open(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	if cfg.MinLength < solver.MinWordLength {
		log.Warn().Int("min_length", cfg.MinLength).Int("using", solver.MinWordLength).
			Msg("minimum word length below the game minimum")
	}
	engine := solver.New(
		solver.WithWorkers(cfg.Workers),
		solver.WithMinLength(cfg.MinLength),
		solver.WithLogger(log.With().Str("component", "solver").Logger()),
	)
	log.Info().Int("workers", engine.Workers()).Int("min_length", engine.MinLength()).Msg("solver ready")

	console := present.NewConsole(os.Stdout)
	eligible := engine.ByLength(lex.Words(), solver.LengthRange{Min: engine.MinLength()})
	console.Lexicon(lex.Len(), len(eligible), engine.MinLength(), lex.Bundled())

	var input prompt.Provider = prompt.NewForm()
	if cfg.oneShot() {
		set, err := oneShotSet(cfg)
		if err != nil {
			return err
		}
		input = prompt.Static{Set: set}
		cfg.Once = true
		cfg.NoType = true
	}

	s := &session{
		cfg:      cfg,
		lex:      lex,
		engine:   engine,
		cache:    store.NewMemoryStore(),
		input:    input,
		console:  console,
		keyboard: openKeyboard,
	}
	return s.run(ctx)
}

// oneShotSet builds the letter set from --center/--letters.
func oneShotSet(cfg Config) (puzzle.LetterSet, error) {
	if cfg.Center == "" {
		all, err := puzzle.ParseLetters(cfg.Letters, puzzle.Size)
		if err != nil {
			return puzzle.LetterSet{}, fmt.Errorf("--letters: %w", err)
		}
		return puzzle.New(all[0], all[1:])
	}
	center, err := puzzle.ParseLetters(cfg.Center, 1)
	if err != nil {
		return puzzle.LetterSet{}, fmt.Errorf("--center: %w", err)
	}
	others, err := puzzle.ParseLetters(cfg.Letters, puzzle.OtherCount, center[0])
	if err != nil {
		return puzzle.LetterSet{}, fmt.Errorf("--letters: %w", err)
	}
	return puzzle.New(center[0], others)
}

func openKeyboard() (present.Keyboard, error) {
	return present.NewOSKeyboard()
}
