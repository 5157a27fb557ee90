package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticWords returns n deterministic a–z words of length 3..9.
func syntheticWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		x := uint32(i)*2654435761 + 12345
		length := 3 + int(x%7)
		b := make([]byte, length)
		for j := range b {
			x = x*1103515245 + 12345
			b[j] = byte('a' + (x>>16)%26)
		}
		out[i] = string(b)
	}
	return out
}

func TestWithinLength(t *testing.T) {
	tests := []struct {
		name string
		word string
		r    LengthRange
		want bool
	}{
		{name: "unbounded", word: "a", r: LengthRange{}, want: true},
		{name: "at min", word: "test", r: LengthRange{Min: 4}, want: true},
		{name: "below min", word: "tet", r: LengthRange{Min: 4}, want: false},
		{name: "at max", word: "test", r: LengthRange{Max: 4}, want: true},
		{name: "above max", word: "tests", r: LengthRange{Max: 4}, want: false},
		{name: "inside both", word: "tests", r: LengthRange{Min: 4, Max: 6}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinLength(tt.word, tt.r))
		})
	}
}

func TestByLength_UnboundedIsIdentity(t *testing.T) {
	e := New()
	words := []string{"a", "bb", "ccc", "dddd"}

	got := e.ByLength(words, LengthRange{})
	assert.Equal(t, words, got)
}

func TestByLength(t *testing.T) {
	e := New()
	words := []string{"a", "bb", "ccc", "dddd", "eeeee"}

	assert.Equal(t, []string{"dddd", "eeeee"}, e.ByLength(words, LengthRange{Min: 4}))
	assert.Equal(t, []string{"bb", "ccc"}, e.ByLength(words, LengthRange{Min: 2, Max: 3}))
	assert.Equal(t, []string{}, e.ByLength(words, LengthRange{Min: 9}))
}

func TestAnyOf_RetainsOnlyPermittedCharacters(t *testing.T) {
	e := New()
	permitted := []rune("tesyabc")
	words := []string{"test", "tests", "testy", "toast", "abbey", "zebra"}

	got := e.AnyOf(words, permitted)
	assert.Equal(t, []string{"test", "tests", "testy", "abbey"}, got)
	for _, w := range got {
		for _, r := range w {
			assert.Contains(t, permitted, r)
		}
	}
}

func TestAllOf(t *testing.T) {
	e := New()
	words := []string{"bet", "beet", "tab", "cabbage"}

	assert.Equal(t, []string{"bet", "beet", "cabbage"}, e.AllOf(words, []rune("e")))
	assert.Equal(t, []string{"beet"}, e.AllOf(words, []rune("ee")))
	assert.Equal(t, words, e.AllOf(words, nil))
}

func TestFilters_Idempotent(t *testing.T) {
	e := New()
	words := syntheticWords(3000)
	letters := []rune("aeiostn")

	once := e.AnyOf(words, letters)
	assert.Equal(t, once, e.AnyOf(once, letters))

	req := []rune("e")
	once = e.AllOf(words, req)
	assert.Equal(t, once, e.AllOf(once, req))

	r := LengthRange{Min: 4, Max: 6}
	once = e.ByLength(words, r)
	assert.Equal(t, once, e.ByLength(once, r))
}

func TestFilters_ParallelMatchesSerial(t *testing.T) {
	words := syntheticWords(10000)
	serial := New(WithWorkers(1))
	parallel := New(WithWorkers(8))
	require.Greater(t, len(parallel.partition(len(words))), 1)

	letters := []rune("abcdefghijklm")
	assert.Equal(t, serial.AnyOf(words, letters), parallel.AnyOf(words, letters))
	assert.Equal(t, serial.AllOf(words, []rune("aa")), parallel.AllOf(words, []rune("aa")))
	assert.Equal(t, serial.ByLength(words, LengthRange{Min: 5}), parallel.ByLength(words, LengthRange{Min: 5}))
	assert.Equal(t, serial.Rank(words, []rune("abcdefg")), parallel.Rank(words, []rune("abcdefg")))
}

func TestPartition(t *testing.T) {
	e := New(WithWorkers(4))

	assert.Equal(t, []span{{0, 10}}, e.partition(10))
	assert.Equal(t, []span{{0, 0}}, e.partition(0))

	spans := e.partition(10000)
	require.Len(t, spans, 4)
	assert.Equal(t, 0, spans[0].start)
	assert.Equal(t, 10000, spans[len(spans)-1].end)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].end, spans[i].start)
	}
}
