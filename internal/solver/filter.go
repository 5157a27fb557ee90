// internal/solver/filter.go
//
// Filter stages of the candidate pipeline:
//
//   Lexicon → ByLength → AnyOf (the 7 letters) → AllOf (center letter) → Rank
//
// Each stage is total over its input: an empty letter set is a defined,
// degenerate case rather than an error. All stages preserve input order and
// are idempotent.

package solver

import "unicode/utf8"

// LengthRange is an inclusive word-length range. A zero bound is unset.
type LengthRange struct {
	Min int
	Max int
}

// Unbounded reports whether neither bound is set.
func (r LengthRange) Unbounded() bool { return r.Min <= 0 && r.Max <= 0 }

// WithinLength reports whether the character count of word falls in r.
func WithinLength(word string, r LengthRange) bool {
	n := utf8.RuneCountInString(word)
	if r.Min > 0 && n < r.Min {
		return false
	}
	if r.Max > 0 && n > r.Max {
		return false
	}
	return true
}

// ByLength keeps words whose length falls in r.
// An unbounded range returns words unchanged.
func (e *Engine) ByLength(words []string, r LengthRange) []string {
	if r.Unbounded() {
		return words
	}
	return e.filter(words, func(w string) bool { return WithinLength(w, r) })
}

// AnyOf keeps words made only of the permitted letters, repeats allowed.
func (e *Engine) AnyOf(words []string, permitted []rune) []string {
	mask := maskOf(permitted)
	return e.filter(words, func(w string) bool { return usesOnlyMask(w, mask) })
}

// AllOf keeps words that contain every required letter, each required
// occurrence consuming its own occurrence in the word.
func (e *Engine) AllOf(words []string, required []rune) []string {
	if len(required) == 0 {
		return e.filter(words, func(string) bool { return true })
	}
	return e.filter(words, func(w string) bool { return ContainsAll(w, required) })
}
