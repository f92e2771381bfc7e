package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for table output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Pot       lipgloss.Style
	Separator lipgloss.Style
	Human     lipgloss.Style // for "(you)"
	Automated lipgloss.Style // for "(bot)"
	Error     lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles creates the styles bound to r. When color is false the renderer
// is forced to the ASCII profile so no escape sequences are written.
func NewStyles(r *lipgloss.Renderer, color bool) *Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Pot: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Human: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Automated: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}
