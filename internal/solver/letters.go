// internal/solver/letters.go
//
// Per-word letter tests shared by the filters and the scorer.
//
//   - UsesOnly:    every character of the word is one of the permitted letters
//                  (repeats allowed). Implemented with a 26-bit letter mask.
//   - ContainsAll: multiset-consumption match. Each required letter must be
//                  matched to a distinct, not yet consumed occurrence in the word.
//
// ContainsAll counts letter frequencies once and decrements per requirement,
// so required = [e e] against "bet" fails (only one 'e' to consume).

package solver

// letterMask is a set of a–z letters, bit i for 'a'+i.
type letterMask uint32

func maskOf(letters []rune) letterMask {
	var m letterMask
	for _, r := range letters {
		if j := idx(r); j >= 0 {
			m |= 1 << j
		}
	}
	return m
}

// UsesOnly reports whether every character of word is in permitted.
// Characters outside a–z never match.
func UsesOnly(word string, permitted []rune) bool {
	return usesOnlyMask(word, maskOf(permitted))
}

func usesOnlyMask(word string, allowed letterMask) bool {
	for _, r := range word {
		j := idx(r)
		if j < 0 || allowed&(1<<j) == 0 {
			return false
		}
	}
	return true
}

// ContainsAll reports whether every letter in required can be matched to its
// own occurrence in word. An empty required set always matches.
func ContainsAll(word string, required []rune) bool {
	if len(required) == 0 {
		return true
	}
	counts := countLetters(word)
	for _, r := range required {
		j := idx(r)
		if j < 0 || counts[j] == 0 {
			return false
		}
		counts[j]--
	}
	return true
}

// countLetters returns the a–z frequency table of word.
func countLetters(word string) [26]int {
	var counts [26]int
	for _, r := range word {
		if j := idx(r); j >= 0 {
			counts[j]++
		}
	}
	return counts
}

// idx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func idx(r rune) int {
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
