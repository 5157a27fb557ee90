// internal/solver/solve.go
//
// Full candidate pipeline for one puzzle plus the counts reported to the user
// after each stage.

package solver

import (
	"fmt"
	"time"

	"github.com/robalobadob/spellbee/internal/lexicon"
	"github.com/robalobadob/spellbee/internal/puzzle"
)

// Result is the outcome of solving one puzzle.
type Result struct {
	Letters     puzzle.LetterSet `json:"-"`
	MinLength   int              `json:"minLength"`
	LexiconSize int              `json:"lexiconSize"` // all known words
	LengthCount int              `json:"lengthCount"` // words at or above MinLength
	AnyCount    int              `json:"anyCount"`    // ...made only of the 7 letters
	AllCount    int              `json:"allCount"`    // ...that also contain the center letter
	Words       []Scored         `json:"words"`       // ranked
	TotalPoints int              `json:"totalPoints"`
	Pangrams    int              `json:"pangrams"`
}

// Solve runs Lexicon → ByLength → AnyOf → AllOf → Rank for set.
func (e *Engine) Solve(lex *lexicon.Lexicon, set puzzle.LetterSet) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	start := time.Now()
	all := set.All()

	res := &Result{
		Letters:     set,
		MinLength:   e.minLength,
		LexiconSize: lex.Len(),
	}

	candidates := e.ByLength(lex.Words(), LengthRange{Min: e.minLength})
	res.LengthCount = len(candidates)

	candidates = e.AnyOf(candidates, all)
	res.AnyCount = len(candidates)

	candidates = e.AllOf(candidates, []rune{set.Center})
	res.AllCount = len(candidates)

	res.Words = e.Rank(candidates, all)
	res.TotalPoints = TotalPoints(res.Words)
	for _, w := range res.Words {
		if w.Pangram {
			res.Pangrams++
		}
	}

	e.log.Debug().
		Str("letters", set.String()).
		Int("workers", e.workers).
		Int("lexicon", res.LexiconSize).
		Int("length", res.LengthCount).
		Int("any", res.AnyCount).
		Int("all", res.AllCount).
		Int("points", res.TotalPoints).
		Dur("took", time.Since(start)).
		Msg("puzzle solved")
	return res, nil
}
