// session.go
//
// Interactive solve loop.
//
// Each round:
//   - ask for the letters and echo them back
//   - solve (or reuse a cached result for the same puzzle)
//   - print stage counts and the ranked table
//   - optionally auto-type the words into the game window
//
// Every round ends by asking whether to continue; the screen is cleared
// only after a yes. The loop ends when the user
// aborts a prompt (Ctrl+C), declines to continue, or after one round with
// --once.

package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellbee/internal/lexicon"
	"github.com/robalobadob/spellbee/internal/present"
	"github.com/robalobadob/spellbee/internal/prompt"
	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
	"github.com/robalobadob/spellbee/internal/store"
)

type session struct {
	cfg      Config
	lex      *lexicon.Lexicon
	engine   *solver.Engine
	cache    store.Store
	input    prompt.Provider
	console  *present.Console
	keyboard func() (present.Keyboard, error)
}

// run plays rounds until the user stops. A user abort is not an error.
func (s *session) run(ctx context.Context) error {
	for {
		again, err := s.round(ctx)
		if err != nil {
			if prompt.Aborted(err) {
				s.console.Println("\nBye!")
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
		s.console.Clear()
		s.console.Println("Restarting the game...")
	}
}

// round solves one puzzle and reports whether another should follow.
func (s *session) round(ctx context.Context) (bool, error) {
	s.console.Rule()
	set, err := s.input.Letters(ctx)
	if err != nil {
		return false, err
	}
	s.console.Rule()
	s.console.Letters(set)

	res, err := s.solve(ctx, set)
	if err != nil {
		return false, err
	}
	s.console.Progress(res)
	s.console.Table(res)
	s.console.Rule()

	if !s.cfg.NoType && len(res.Words) > 0 {
		ok, err := s.input.Confirm(ctx, "Do you want to auto-type the words?")
		if err != nil {
			return false, err
		}
		if ok {
			if err := s.autoType(ctx, res); err != nil {
				if prompt.Aborted(err) {
					return false, err
				}
				log.Error().Err(err).Msg("auto-type failed")
				s.console.Warn("Auto-typing failed: " + err.Error())
			}
			s.console.Rule()
		}
	}
	if s.cfg.Once {
		return false, nil
	}
	// The table stays on screen until the user answers.
	return s.input.Confirm(ctx, "Solve another puzzle?")
}

// solve runs the pipeline, reusing earlier results for the same puzzle.
func (s *session) solve(ctx context.Context, set puzzle.LetterSet) (*solver.Result, error) {
	key := store.Key(set, s.engine.MinLength())
	if res, err := s.cache.Get(ctx, key); err == nil {
		log.Debug().Str("key", key).Msg("reusing cached result")
		return res, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	res, err := s.engine.Solve(s.lex, set)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Save(ctx, key, res); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache result")
	}
	return res, nil
}

// autoType types every ranked word into the focused window.
func (s *session) autoType(ctx context.Context, res *solver.Result) error {
	s.console.Println("\nReady the game screen, then confirm and immediately click to focus the game window.")
	s.console.Println("Typing starts after the countdown.")
	ok, err := s.input.Confirm(ctx, "Start typing?")
	if err != nil || !ok {
		return err
	}

	kb, err := s.keyboard()
	if err != nil {
		return err
	}
	if err := present.Countdown(ctx, s.console.Out, s.cfg.Countdown); err != nil {
		return err
	}

	words := make([]string, len(res.Words))
	for i, w := range res.Words {
		words[i] = w.Word
	}

	s.console.Println("Auto-typing the words...")
	start := time.Now()
	if err := present.NewTypist(kb, s.console.Out, s.cfg.TypeDelay).Type(ctx, words); err != nil {
		return err
	}
	log.Info().Int("words", len(words)).Dur("took", time.Since(start)).Msg("auto-type complete")
	s.console.Println("Auto-typing complete.")
	return nil
}
