// internal/present/table.go
//
// Ranked word table: Word | Points, followed by totals.
// Pangram rows are highlighted.

package present

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/robalobadob/spellbee/internal/solver"
)

// DictionaryNote reminds the user the bundled list is broader than the game's.
const DictionaryNote = "** Some of the words here may not exist in the Spelling Bee game dictionary **"

// Table renders the ranked words of res with their totals.
func Table(res *solver.Result) string {
	rows := make([][]string, len(res.Words))
	for i, w := range res.Words {
		rows[i] = []string{w.Word, strconv.Itoa(w.Points)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Styles.Border).
		Headers("Word", "Points").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.Header
			case row >= 0 && row < len(res.Words) && res.Words[row].Pangram && col == 0:
				return Styles.Pangram
			case col == 1:
				return Styles.Points
			default:
				return Styles.Cell
			}
		})
	return t.String()
}

// Table writes the rendered table and totals to the console.
func (c *Console) Table(res *solver.Result) {
	WriteTable(c.Out, res)
}

// WriteTable writes the table, totals and dictionary note to w.
func WriteTable(w io.Writer, res *solver.Result) {
	fmt.Fprintln(w, Table(res))
	fmt.Fprintf(w, "Total words: %s\n", humanize.Comma(int64(len(res.Words))))
	fmt.Fprintf(w, "Max possible points: %s\n", humanize.Comma(int64(res.TotalPoints)))
	if res.Pangrams > 0 {
		fmt.Fprintf(w, "Pangrams: %s\n", Styles.Pangram.Render(strconv.Itoa(res.Pangrams)))
	}
	fmt.Fprintf(w, "\n%s\n\n", Styles.Note.Render(DictionaryNote))
}
