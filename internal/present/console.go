// internal/present/console.go
//
// Line-oriented progress output: lexicon counts, the puzzle letters,
// per-stage candidate counts, separator rules and screen clearing.

package present

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/inancgumus/screen"
	"golang.org/x/term"

	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 64

// BundledNote is shown when the embedded sample word list is in use.
const BundledNote = "Using the bundled sample word list; pass --words (or set LEXICON_FILE) to a full dictionary such as words_alpha.txt for complete results."

// Console writes user-facing output.
type Console struct {
	Out         io.Writer
	Width       func() int // defaults to TerminalWidth
	ClearScreen func()     // nil disables clearing
}

// NewConsole writes to out using the stdout terminal width.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out, Width: TerminalWidth, ClearScreen: ClearTerminal}
}

// ClearTerminal clears the terminal and homes the cursor.
func ClearTerminal() {
	screen.Clear()
	screen.MoveTopLeft()
}

// TerminalWidth reports the stdout width, or DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

func (c *Console) width() int {
	if c.Width == nil {
		return DefaultWidth
	}
	return c.Width()
}

// Rule prints a full-width separator surrounded by blank lines.
func (c *Console) Rule() {
	fmt.Fprintf(c.Out, "\n%s\n\n", Styles.Rule.Render(strings.Repeat("-", c.width())))
}

// Clear clears the screen.
func (c *Console) Clear() {
	if c.ClearScreen != nil {
		c.ClearScreen()
	}
}

// Lexicon reports the loaded word count and how many meet the minimum length.
func (c *Console) Lexicon(size, eligible, minLength int, bundled bool) {
	fmt.Fprintf(c.Out, "Dictionary loaded with %s words\n", Styles.Count.Render(humanize.Comma(int64(size))))
	if bundled {
		fmt.Fprintln(c.Out, Styles.Note.Render(BundledNote))
	}
	fmt.Fprintf(c.Out, "There are %s words with %d or more letters\n",
		Styles.Count.Render(humanize.Comma(int64(eligible))), minLength)
}

// Letters echoes the puzzle letters back to the user.
func (c *Console) Letters(set puzzle.LetterSet) {
	fmt.Fprintf(c.Out, "Center letter: %s\n", Styles.Center.Render(string(set.Center)))
	fmt.Fprintf(c.Out, "Other letters: [ %s ]\n", Styles.Letters.Render(puzzle.Join(set.Others, ", ")))
}

// Progress reports the candidate counts after each letter filter.
func (c *Console) Progress(res *solver.Result) {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "> There are %s words that can be made from any of the %d letters\n",
		Styles.Count.Render(humanize.Comma(int64(res.AnyCount))), puzzle.Size)
	fmt.Fprintf(c.Out, "> From there, there are %s possible words that contain the center letter\n",
		Styles.Count.Render(humanize.Comma(int64(res.AllCount))))
	fmt.Fprintln(c.Out)
}

// Warn prints a highlighted warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, Styles.Warning.Render(msg))
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}
