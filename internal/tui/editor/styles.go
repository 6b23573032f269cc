package editor

import (
	"github.com/charmbracelet/lipgloss"

	ed "github.com/inklet/inklet/internal/editor"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	boldStyle = lipgloss.NewStyle().Bold(true)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7")).
			Background(lipgloss.Color("#224"))

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#556"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#0AF")).
			Foreground(lipgloss.Color("#FFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)

// spanStyle picks the terminal style for a rendered span. Marker spans are
// faded regardless of the construct they belong to.
func spanStyle(span ed.Span) lipgloss.Style {
	if span.Marker {
		switch span.Style {
		case ed.StyleBullet, ed.StyleQuote:
			if span.Style == ed.StyleBullet {
				return bulletStyle
			}
			return quoteStyle
		default:
			return markerStyle
		}
	}

	switch span.Style {
	case ed.StyleHeading:
		return headingStyle
	case ed.StyleBold:
		return boldStyle
	case ed.StyleCode:
		return codeStyle
	case ed.StyleBullet:
		return bulletStyle
	case ed.StyleQuote:
		return quoteStyle
	default:
		return textStyle
	}
}
