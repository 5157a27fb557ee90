// internal/present/styles.go
//
// Terminal palette for the solver output.

package present

import "github.com/charmbracelet/lipgloss"

var (
	ColorCenter  = lipgloss.Color("#F4D03F") // honey yellow, the center letter
	ColorLetters = lipgloss.Color("#FDFEFE")
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPangram = lipgloss.Color("#F5B041")
	ColorMuted   = lipgloss.Color("#7F8C8D")
	ColorWarning = lipgloss.Color("#E67E22")
)

// Styles holds the pre-configured lipgloss styles.
var Styles = struct {
	Center   lipgloss.Style
	Letters  lipgloss.Style
	Count    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Points   lipgloss.Style
	Pangram  lipgloss.Style
	Border   lipgloss.Style
	Rule     lipgloss.Style
	Note     lipgloss.Style
	Progress lipgloss.Style
	Warning  lipgloss.Style
}{
	Center:   lipgloss.NewStyle().Bold(true).Foreground(ColorCenter),
	Letters:  lipgloss.NewStyle().Bold(true).Foreground(ColorLetters),
	Count:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Cell:     lipgloss.NewStyle().Padding(0, 1),
	Points:   lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	Pangram:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ColorPangram),
	Border:   lipgloss.NewStyle().Foreground(ColorMuted),
	Rule:     lipgloss.NewStyle().Foreground(ColorLetters),
	Note:     lipgloss.NewStyle().Italic(true).Foreground(ColorMuted),
	Progress: lipgloss.NewStyle().Foreground(ColorAccent),
	Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
}
