// internal/puzzle/puzzle.go
//
// Letter set for a single Spelling Bee puzzle.
// Defines:
//   - LetterSet: one center letter plus six other letters, all distinct a–z.
//   - ParseLetters: normalization of free-form user input into letters.
//
// A LetterSet is created once per session from validated input and is
// read-only afterwards.

package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	// OtherCount is the number of non-center letters in a puzzle.
	OtherCount = 6
	// Size is the total number of letters in a puzzle.
	Size = OtherCount + 1
)

var (
	ErrInvalidLetterSetSize = errors.New("puzzle: invalid letter set size")
	ErrDuplicateLetter      = errors.New("puzzle: duplicate letter")
	ErrNotALetter           = errors.New("puzzle: not a lowercase letter")
)

// LetterSet holds the puzzle letters.
type LetterSet struct {
	Center rune   // letter every answer must contain
	Others []rune // the six surrounding letters
}

// New builds and validates a LetterSet.
func New(center rune, others []rune) (LetterSet, error) {
	s := LetterSet{Center: center, Others: append([]rune(nil), others...)}
	if err := s.Validate(); err != nil {
		return LetterSet{}, err
	}
	return s, nil
}

// Validate checks the size, alphabet and uniqueness invariants.
func (s LetterSet) Validate() error {
	if len(s.Others) != OtherCount {
		return fmt.Errorf("%w: got %d other letters, want %d", ErrInvalidLetterSetSize, len(s.Others), OtherCount)
	}
	var seen [26]bool
	for _, r := range s.All() {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q", ErrNotALetter, r)
		}
		if seen[r-'a'] {
			return fmt.Errorf("%w: %q", ErrDuplicateLetter, r)
		}
		seen[r-'a'] = true
	}
	return nil
}

// All returns the seven letters, center first.
func (s LetterSet) All() []rune {
	out := make([]rune, 0, 1+len(s.Others))
	out = append(out, s.Center)
	return append(out, s.Others...)
}

// Key identifies the puzzle independent of the order of the other letters.
func (s LetterSet) Key() string {
	others := append([]rune(nil), s.Others...)
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	return string(s.Center) + ":" + string(others)
}

// String renders the set as "c [a, b, ...]".
func (s LetterSet) String() string {
	return fmt.Sprintf("%c [%s]", s.Center, Join(s.Others, ", "))
}

// Join renders letters separated by sep.
func Join(letters []rune, sep string) string {
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// ParseLetters normalizes free-form input into exactly n distinct letters.
//
// Non-letters (commas, spaces, digits) are ignored, letters are lowercased,
// repeats collapse to their first occurrence and anything in exclude is
// dropped. The result must then hold exactly n letters.
func ParseLetters(input string, n int, exclude ...rune) ([]rune, error) {
	var (
		out  []rune
		seen = make(map[rune]bool)
	)
	for _, r := range exclude {
		seen[unicode.ToLower(r)] = true
	}
	for _, r := range input {
		if !unicode.IsLetter(r) {
			continue
		}
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("%w: %q", ErrNotALetter, r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) != n {
		msg := fmt.Sprintf("please enter exactly %d unique letters", n)
		if len(exclude) > 0 {
			msg += fmt.Sprintf(" excluding [%s]", Join(exclude, ", "))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidLetterSetSize, msg)
	}
	return out, nil
}
