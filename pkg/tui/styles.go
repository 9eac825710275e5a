package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	ToolColor   = lipgloss.Color("#9ece6a")
	WarnColor   = lipgloss.Color("#e0af68")
	PanelBorder = lipgloss.Color("#3b3b3b")
)

// Command-line output styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ToolColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	AccentStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)
)

// Browser styles
var (
	FolderRowStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ItemRowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(AccentColor)

	ListPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(PanelBorder).
			PaddingRight(1)

	DetailPaneStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	FilterStyle = lipgloss.NewStyle().
			Foreground(WarnColor)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)
)

// methodColors tints the method badge in the request list.
var methodColors = map[string]lipgloss.Color{
	"GET":    ToolColor,
	"POST":   AccentColor,
	"PUT":    WarnColor,
	"PATCH":  WarnColor,
	"DELETE": ErrorColor,
}

// MethodStyle returns the badge style for an HTTP method.
func MethodStyle(method string) lipgloss.Style {
	c, ok := methodColors[method]
	if !ok {
		c = TextColor
	}
	return lipgloss.NewStyle().Foreground(c).Width(6)
}
