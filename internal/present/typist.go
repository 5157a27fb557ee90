// internal/present/typist.go
//
// Keystroke automation: types each ranked word into whatever window has
// focus, followed by Enter.
//
// Timing per word:
//   - every character: key down, KeyDelay, key up, KeyDelay
//   - submit: Enter down/up twice with SubmitDelay between events; the
//     second press covers games that drop the first one
//   - WordDelay after the final release, before the next word
//
// Typing stops between keystrokes once ctx is cancelled.

package present

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	DefaultKeyDelay    = 10 * time.Millisecond
	DefaultSubmitDelay = 25 * time.Millisecond
	DefaultWordDelay   = 750 * time.Millisecond
)

// KeyEnter is the rune a Keyboard maps to the submit key.
const KeyEnter = '\n'

// ErrUnsupportedKey is returned by a Keyboard for runes it cannot type.
var ErrUnsupportedKey = errors.New("keyboard: unsupported key")

// Keyboard injects key events into the focused window.
type Keyboard interface {
	KeyDown(r rune) error
	KeyUp(r rune) error
}

// Typist types words through a Keyboard.
type Typist struct {
	Keyboard    Keyboard
	Out         io.Writer // progress line; nil disables it
	KeyDelay    time.Duration
	SubmitDelay time.Duration
	WordDelay   time.Duration
}

// NewTypist returns a Typist with the default key timings.
func NewTypist(kb Keyboard, out io.Writer, wordDelay time.Duration) *Typist {
	return &Typist{
		Keyboard:    kb,
		Out:         out,
		KeyDelay:    DefaultKeyDelay,
		SubmitDelay: DefaultSubmitDelay,
		WordDelay:   wordDelay,
	}
}

// Type enters every word in order.
func (t *Typist) Type(ctx context.Context, words []string) error {
	width := 0
	for i, w := range words {
		if t.Out != nil {
			line := fmt.Sprintf("[%d/%d] Typing word: %s", i+1, len(words), w)
			pad := max(width-len(line), 0)
			width = max(width, len(line))
			fmt.Fprintf(t.Out, "\r%s%*s", Styles.Progress.Render(line), pad, "")
		}
		if err := t.word(ctx, w); err != nil {
			return fmt.Errorf("type %q: %w", w, err)
		}
	}
	if t.Out != nil && len(words) > 0 {
		fmt.Fprintln(t.Out)
	}
	return nil
}

func (t *Typist) word(ctx context.Context, w string) error {
	for _, r := range w {
		if err := t.tap(ctx, r, t.KeyDelay, t.KeyDelay); err != nil {
			return err
		}
	}
	if err := t.tap(ctx, KeyEnter, t.SubmitDelay, t.SubmitDelay); err != nil {
		return err
	}
	return t.tap(ctx, KeyEnter, t.SubmitDelay, t.WordDelay)
}

// tap presses and releases r, pausing hold after the press and after after the release.
func (t *Typist) tap(ctx context.Context, r rune, hold, after time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Keyboard.KeyDown(r); err != nil {
		return err
	}
	if err := sleep(ctx, hold); err != nil {
		_ = t.Keyboard.KeyUp(r)
		return err
	}
	if err := t.Keyboard.KeyUp(r); err != nil {
		return err
	}
	return sleep(ctx, after)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Countdown prints "Starting in N..." once per second, then returns.
func Countdown(ctx context.Context, out io.Writer, d time.Duration) error {
	for left := int(d / time.Second); left > 0; left-- {
		fmt.Fprintf(out, "Starting in %d...\n", left)
		if err := sleep(ctx, time.Second); err != nil {
			return err
		}
	}
	return nil
}
