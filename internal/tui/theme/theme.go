package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	ActiveRow  lipgloss.Style
	Border     lipgloss.Style
	Price      lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	PageButton lipgloss.Style
	PageActive lipgloss.Style
	SearchBox  lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface1 := lipgloss.Color("#45475a")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(cpTeal).Padding(0, 1),
		Cell:       lipgloss.NewStyle().Foreground(cpText).Padding(0, 1),
		ActiveRow:  lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText).Padding(0, 1),
		Border:     lipgloss.NewStyle().Foreground(cpSurface1),
		Price:      lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		Muted:      lipgloss.NewStyle().Foreground(cpSubtext0),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		PageButton: lipgloss.NewStyle().Foreground(cpSubtext1).Padding(0, 1),
		PageActive: lipgloss.NewStyle().Bold(true).Foreground(cpSurface0).Background(cpPeach).Padding(0, 1),
		SearchBox:  lipgloss.NewStyle().Foreground(cpLavender),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
	}
}

// RowStyle picks the style of a table cell.
func (t Theme) RowStyle(active bool) lipgloss.Style {
	if active {
		return t.ActiveRow
	}
	return t.Cell
}

// PageStyle picks the style of a pagination button.
func (t Theme) PageStyle(active bool) lipgloss.Style {
	if active {
		return t.PageActive
	}
	return t.PageButton
}
