// internal/lexicon/lexicon.go
//
// Immutable, deduplicated word collection used by the solver.
//
// Responsibilities:
//   - Load a newline-delimited word list from a file, a reader, or the bundled asset.
//   - Normalize entries (trim, lowercase) and keep only a–z words.
//   - Expose the word count, a sorted read-only word slice and membership lookups.
//
// Sources (Open):
//   1. If a path is given (LEXICON_FILE / --words), load that file.
//   2. Otherwise fall back to the embedded assets/words.txt.
//
// A Lexicon is built once at startup and shared by reference afterwards.
// Nothing mutates it after construction, so concurrent readers need no locking.

package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellbee/assets"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("lexicon: word list is empty")

// Lexicon is a set of lowercase words.
type Lexicon struct {
	words   []string            // sorted, unique
	set     map[string]struct{} // lookup index over words
	bundled bool                // loaded from the embedded sample list
}

// New builds a Lexicon from raw entries.
// Entries are trimmed and lowercased; anything that is not purely a–z is dropped.
func New(list []string) *Lexicon {
	set := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := normalize(raw)
		if w == "" || !isAlpha(w) {
			continue
		}
		set[w] = struct{}{}
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return &Lexicon{words: words, set: set}
}

// Load reads one word per line from r.
// Blank lines and "#" comments are skipped. Returns ErrEmpty if nothing usable was read.
func Load(r io.Reader) (*Lexicon, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}
	lex := New(lines)
	if lex.Len() == 0 {
		return nil, ErrEmpty
	}
	return lex, nil
}

// LoadFile loads a word list from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Embedded loads the word list bundled in the assets package.
func Embedded() (*Lexicon, error) {
	f, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("lexicon: open embedded %s: %w", assets.WordListName, err)
	}
	defer f.Close()
	lex, err := Load(f)
	if err != nil {
		return nil, err
	}
	lex.bundled = true
	return lex, nil
}

// Open loads from path, or from the embedded asset when path is empty.
func Open(path string) (*Lexicon, error) {
	var (
		lex *Lexicon
		err error
	)
	source := path
	if path == "" {
		source = "embedded:" + assets.WordListName
		lex, err = Embedded()
	} else {
		lex, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", source).Int("words", lex.Len()).Msg("lexicon loaded")
	return lex, nil
}

// Bundled reports whether the words came from the embedded list.
// That list is a small sample, so solutions found with it are incomplete.
func (l *Lexicon) Bundled() bool { return l.bundled }

// Len reports the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

// Words returns all words in ascending order.
// The slice is shared; callers must not modify it.
func (l *Lexicon) Words() []string { return l.words }

// Contains reports whether w (case-insensitive) is a known word.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.set[normalize(w)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
