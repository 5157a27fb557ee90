// internal/prompt/prompt.go
//
// Input provider for the solver session.
//
// Responsibilities:
//   - Ask for the center letter (exactly one letter).
//   - Ask for the six other letters (unique, excluding the center letter).
//   - Ask yes/no questions (auto-type, restart).
//
// Input is re-asked until it validates; the validators wrap
// puzzle.ParseLetters so the rules live in one place.
// When stdin is not a terminal, forms run in accessible (line) mode.

package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/spellbee/internal/puzzle"
)

// Provider supplies validated puzzle input and confirmations.
type Provider interface {
	Letters(ctx context.Context) (puzzle.LetterSet, error)
	Confirm(ctx context.Context, title string) (bool, error)
}

// Aborted reports whether err means the user quit the prompt.
func Aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled)
}

// ValidateCenter accepts exactly one letter.
func ValidateCenter(s string) error {
	_, err := puzzle.ParseLetters(s, 1)
	return err
}

// ValidateOthers accepts exactly six unique letters other than center.
func ValidateOthers(center rune) func(string) error {
	return func(s string) error {
		_, err := puzzle.ParseLetters(s, puzzle.OtherCount, center)
		return err
	}
}

// Form asks questions with huh forms.
type Form struct {
	Accessible bool
}

// NewForm returns a Form, switching to accessible mode for non-TTY stdin.
func NewForm() *Form {
	fd := os.Stdin.Fd()
	return &Form{Accessible: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)}
}

func (f *Form) run(ctx context.Context, fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(f.Accessible).
		RunWithContext(ctx)
}

// Letters asks for the center letter, then the other six.
func (f *Form) Letters(ctx context.Context) (puzzle.LetterSet, error) {
	var centerIn, othersIn string

	err := f.run(ctx, huh.NewInput().
		Title("Enter the center letter:").
		Value(&centerIn).
		Validate(ValidateCenter))
	if err != nil {
		return puzzle.LetterSet{}, err
	}
	center, err := puzzle.ParseLetters(centerIn, 1)
	if err != nil {
		return puzzle.LetterSet{}, err
	}

	err = f.run(ctx, huh.NewInput().
		Title("Enter the other 6 letters, separated by commas:").
		Placeholder("a, b, c, d, e, f").
		Value(&othersIn).
		Validate(ValidateOthers(center[0])))
	if err != nil {
		return puzzle.LetterSet{}, err
	}
	others, err := puzzle.ParseLetters(othersIn, puzzle.OtherCount, center[0])
	if err != nil {
		return puzzle.LetterSet{}, err
	}
	return puzzle.New(center[0], others)
}

// Confirm asks a yes/no question.
func (f *Form) Confirm(ctx context.Context, title string) (bool, error) {
	var ok bool
	err := f.run(ctx, huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

// Static answers from fixed values; used for one-shot, non-interactive runs.
type Static struct {
	Set    puzzle.LetterSet
	Answer bool // returned by every Confirm
}

// Letters returns the fixed letter set.
func (s Static) Letters(ctx context.Context) (puzzle.LetterSet, error) {
	if err := ctx.Err(); err != nil {
		return puzzle.LetterSet{}, err
	}
	return s.Set, s.Set.Validate()
}

// Confirm returns the fixed answer.
func (s Static) Confirm(ctx context.Context, title string) (bool, error) {
	return s.Answer, ctx.Err()
}
