package present

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/micmonay/keybd_event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
)

type keyEvent struct {
	down bool
	r    rune
}

type fakeKeyboard struct {
	events []keyEvent
	failOn rune
}

func (f *fakeKeyboard) KeyDown(r rune) error {
	if r == f.failOn {
		return ErrUnsupportedKey
	}
	f.events = append(f.events, keyEvent{true, r})
	return nil
}

func (f *fakeKeyboard) KeyUp(r rune) error {
	f.events = append(f.events, keyEvent{false, r})
	return nil
}

func (f *fakeKeyboard) typed() string {
	var b strings.Builder
	for _, e := range f.events {
		if e.down {
			b.WriteRune(e.r)
		}
	}
	return b.String()
}

func fastTypist(kb Keyboard, out io.Writer) *Typist {
	return &Typist{Keyboard: kb, Out: out}
}

func TestTypist_TypesWordsThenDoubleEnter(t *testing.T) {
	kb := &fakeKeyboard{}
	var out bytes.Buffer

	err := fastTypist(kb, &out).Type(context.Background(), []string{"tests", "abet"})
	require.NoError(t, err)

	assert.Equal(t, "tests\n\nabet\n\n", kb.typed())
	require.Len(t, kb.events, 2*(5+2+4+2))
	for i := 0; i < len(kb.events); i += 2 {
		assert.True(t, kb.events[i].down)
		assert.False(t, kb.events[i+1].down)
		assert.Equal(t, kb.events[i].r, kb.events[i+1].r)
	}
	assert.Contains(t, out.String(), "[1/2] Typing word: tests")
	assert.Contains(t, out.String(), "[2/2] Typing word: abet")
}

func TestTypist_Empty(t *testing.T) {
	kb := &fakeKeyboard{}
	var out bytes.Buffer

	require.NoError(t, fastTypist(kb, &out).Type(context.Background(), nil))
	assert.Empty(t, kb.events)
	assert.Empty(t, out.String())
}

func TestTypist_Cancelled(t *testing.T) {
	kb := &fakeKeyboard{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fastTypist(kb, nil).Type(ctx, []string{"test"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, kb.events)
}

func TestTypist_CancelledDuringWordDelay(t *testing.T) {
	kb := &fakeKeyboard{}
	typist := &Typist{Keyboard: kb, WordDelay: time.Hour}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := typist.Type(ctx, []string{"test", "tests"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "test\n\n", kb.typed())
}

func TestTypist_KeyboardError(t *testing.T) {
	kb := &fakeKeyboard{failOn: 'x'}

	err := fastTypist(kb, nil).Type(context.Background(), []string{"text"})
	assert.True(t, errors.Is(err, ErrUnsupportedKey))
	assert.Contains(t, err.Error(), `"text"`)
}

func TestNewTypist_Defaults(t *testing.T) {
	typist := NewTypist(&fakeKeyboard{}, nil, 750*time.Millisecond)
	assert.Equal(t, DefaultKeyDelay, typist.KeyDelay)
	assert.Equal(t, DefaultSubmitDelay, typist.SubmitDelay)
	assert.Equal(t, DefaultWordDelay, typist.WordDelay)
}

func TestCountdown(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Countdown(context.Background(), &out, 0))
	assert.Empty(t, out.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Countdown(ctx, &out, 3*time.Second)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "Starting in 3...\n", out.String())
}

func TestKeyCode(t *testing.T) {
	code, err := keyCode('a')
	require.NoError(t, err)
	assert.Equal(t, keybd_event.VK_A, code)

	code, err = keyCode('z')
	require.NoError(t, err)
	assert.Equal(t, keybd_event.VK_Z, code)

	code, err = keyCode(KeyEnter)
	require.NoError(t, err)
	assert.Equal(t, keybd_event.VK_ENTER, code)

	_, err = keyCode('A')
	assert.True(t, errors.Is(err, ErrUnsupportedKey))
}

func sampleResult(t *testing.T) *solver.Result {
	t.Helper()
	set, err := puzzle.New('a', []rune("cbinet"))
	require.NoError(t, err)
	words := []solver.Scored{
		{Word: "cabinet", Points: 14, Pangram: true},
		{Word: "cabin", Points: 5},
		{Word: "bean", Points: 1},
	}
	return &solver.Result{
		Letters:     set,
		AnyCount:    1234,
		AllCount:    3,
		Words:       words,
		TotalPoints: solver.TotalPoints(words),
		Pangrams:    1,
	}
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	WriteTable(&out, sampleResult(t))

	s := out.String()
	for _, want := range []string{"Word", "Points", "cabinet", "14", "cabin", "bean"} {
		assert.Contains(t, s, want)
	}
	assert.Contains(t, s, "Total words: 3")
	assert.Contains(t, s, "Max possible points: 20")
	assert.Contains(t, s, "Pangrams:")
	assert.Contains(t, s, DictionaryNote)
	assert.Less(t, strings.Index(s, "cabinet"), strings.Index(s, "bean"))
}

func TestWriteTable_Empty(t *testing.T) {
	var out bytes.Buffer
	WriteTable(&out, &solver.Result{})

	s := out.String()
	assert.Contains(t, s, "Total words: 0")
	assert.Contains(t, s, "Max possible points: 0")
	assert.NotContains(t, s, "Pangrams:")
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := &Console{Out: &out, Width: func() int { return 10 }}

	c.Lexicon(370105, 350000, 4, false)
	c.Letters(sampleResult(t).Letters)
	c.Progress(sampleResult(t))
	c.Rule()

	s := out.String()
	assert.Contains(t, s, "370,105")
	assert.Contains(t, s, "4 or more letters")
	assert.NotContains(t, s, BundledNote)
	assert.Contains(t, s, "Center letter: ")
	assert.Contains(t, s, "c, b, i, n, e, t")
	assert.Contains(t, s, "1,234")
	assert.Contains(t, s, "any of the 7 letters")
	assert.Contains(t, s, strings.Repeat("-", 10))
	assert.NotContains(t, s, strings.Repeat("-", 11))
}

func TestConsole_NilWidth(t *testing.T) {
	var out bytes.Buffer
	c := &Console{Out: &out}
	c.Rule()
	assert.Contains(t, out.String(), strings.Repeat("-", DefaultWidth))
}

func TestConsole_BundledNote(t *testing.T) {
	var out bytes.Buffer
	c := &Console{Out: &out}
	c.Lexicon(1633, 1500, 4, true)
	assert.Contains(t, out.String(), BundledNote)
}

func TestConsole_Clear(t *testing.T) {
	var out bytes.Buffer
	cleared := 0
	c := &Console{Out: &out, ClearScreen: func() { cleared++ }}
	c.Clear()
	assert.Equal(t, 1, cleared)
	assert.Empty(t, out.String())

	c.ClearScreen = nil
	assert.NotPanics(t, c.Clear)
}
