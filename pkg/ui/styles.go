package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indices, so output follows the user's terminal colors
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorRed     = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	colorGray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

const (
	markSuccess = "✔"
	markError   = "✘"
	markInfo    = "ℹ"
	markWarning = "⚠"
)

// styles rendered by messages, summaries, the check table and prompts
var (
	styleSuccess lipgloss.Style
	styleError   lipgloss.Style
	styleWarning lipgloss.Style
	styleInfo    lipgloss.Style
	styleMuted   lipgloss.Style
	styleAccent  lipgloss.Style
	styleBold    lipgloss.Style
	styleTitle   lipgloss.Style
	styleHeading lipgloss.Style

	styleTableHeader lipgloss.Style
	styleTableRule   lipgloss.Style
	styleTableRowAlt lipgloss.Style
)

func init() {
	SetTheme("auto")
}

// SetTheme applies a color theme: "light", "dark" or "auto" (detect)
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	base := lipgloss.NewStyle()
	styleSuccess = base.Foreground(colorGreen).Bold(true)
	styleError = base.Foreground(colorRed).Bold(true)
	styleWarning = base.Foreground(colorYellow).Bold(true)
	styleInfo = base.Foreground(colorCyan)
	styleMuted = base.Foreground(colorGray)
	styleAccent = base.Foreground(colorBlue)
	styleBold = base.Bold(true)
	styleTitle = base.Foreground(colorMagenta).Bold(true).Underline(true)
	styleHeading = base.Foreground(colorMagenta).Bold(true)

	styleTableHeader = styleHeading
	styleTableRule = styleMuted
	styleTableRowAlt = base.Faint(true)
}

func FormatSuccess(msg string) string {
	return styleSuccess.Render(markSuccess + " " + msg)
}

func FormatError(msg string) string {
	return styleError.Render(markError + " " + msg)
}

func FormatInfo(msg string) string {
	return styleInfo.Render(markInfo + " " + msg)
}

func FormatWarning(msg string) string {
	return styleWarning.Render(markWarning + " " + msg)
}

// FormatSection returns a heading such as "📋 Next steps:"
func FormatSection(icon, title string) string {
	return styleHeading.Render(icon + " " + title + ":")
}

func FormatTitle(title string) string {
	return styleTitle.Render(title)
}

func FormatMuted(text string) string {
	return styleMuted.Render(text)
}

func FormatBold(text string) string {
	return styleBold.Render(text)
}
