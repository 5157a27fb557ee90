// internal/solver/score.go
//
// Point scheme and ranking.
//
// Points for a word:
//   - exactly 4 letters      → 1 point
//   - any other length       → 1 point per letter
//   - uses all puzzle letters → +7 (pangram bonus)
//
// The pangram test is a fresh multiset-consumption match against the full
// letter set; it does not reuse the center-letter filter result.
//
// Rank orders by points descending, then alphabetically so equal scores
// always come out in the same order.

package solver

import (
	"sort"
	"unicode/utf8"
)

const (
	// MinWordLength is the shortest word the game accepts.
	MinWordLength = 4
	// ShortWordPoints is the flat value of a 4-letter word.
	ShortWordPoints = 1
	// PangramBonus is added when a word uses every puzzle letter.
	PangramBonus = 7
)

// Scored is a word with its point value.
type Scored struct {
	Word    string `json:"word"`
	Points  int    `json:"points"`
	Pangram bool   `json:"pangram"`
}

// Evaluate scores a single word against the puzzle letters.
func Evaluate(word string, letters []rune) Scored {
	n := utf8.RuneCountInString(word)
	points := n
	if n == MinWordLength {
		points = ShortWordPoints
	}
	pangram := len(letters) > 0 && ContainsAll(word, letters)
	if pangram {
		points += PangramBonus
	}
	return Scored{Word: word, Points: points, Pangram: pangram}
}

// Score returns the point value of word for the given puzzle letters.
func Score(word string, letters []rune) int {
	return Evaluate(word, letters).Points
}

// Rank scores every word and sorts the result by points descending,
// ties broken by word ascending.
func (e *Engine) Rank(words []string, letters []rune) []Scored {
	out := make([]Scored, len(words))
	e.each(len(words), func(i int) {
		out[i] = Evaluate(words[i], letters)
	})
	SortScored(out)
	return out
}

// SortScored sorts in place by points descending, then word ascending.
func SortScored(s []Scored) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Points != s[j].Points {
			return s[i].Points > s[j].Points
		}
		return s[i].Word < s[j].Word
	})
}

// TotalPoints sums the points of s.
func TotalPoints(s []Scored) int {
	total := 0
	for _, w := range s {
		total += w.Points
	}
	return total
}
