package ui

import (
	"reactive-breakpoints/breakpoint"

	"github.com/charmbracelet/lipgloss"
)

// Semantic Color Palette
// Every tier has its own color, and every flag is shown with both a color and
// a shape so the panel stays readable without color.

// Tier colors, narrowest to widest.
var TierColors = map[breakpoint.Name]lipgloss.AdaptiveColor{
	breakpoint.XS:  {Light: "#DC2626", Dark: "#EF4444"},
	breakpoint.SM:  {Light: "#D97706", Dark: "#F59E0B"},
	breakpoint.MD:  {Light: "#65A30D", Dark: "#84CC16"},
	breakpoint.LG:  {Light: "#16A34A", Dark: "#22C55E"},
	breakpoint.XL:  {Light: "#2563EB", Dark: "#3B82F6"},
	breakpoint.XXL: {Light: "#7C3AED", Dark: "#8B5CF6"},
}

// Status colors
var (
	// StatusWatching means the observer is delivering changes
	StatusWatching = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusPaused means changes are being dropped
	StatusPaused = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	// StatusWarning is used for the minimum size warning
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// Flag icons (shape + color)
const (
	IconOn       = "●"
	IconOff      = "○"
	IconPaused   = "⏸"
	IconWatching = "▶"
	IconWarning  = "!"
	IconMarker   = "▼"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// TierColor returns the color for name, or Primary for an unknown name.
func TierColor(name breakpoint.Name) lipgloss.TerminalColor {
	if c, ok := TierColors[name]; ok {
		return c
	}
	return Primary
}

// TierStyle returns a foreground style in the tier's color.
func TierStyle(name breakpoint.Name) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(name))
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Bold(true).
		Padding(0, 1)
}

// TierBadge returns the tier name as a badge in the tier's color.
func TierBadge(name breakpoint.Name) string {
	return BadgeStyle(TierColor(name)).Render(name.String())
}

// FlagIcon returns the filled icon for a set flag and the hollow one otherwise.
func FlagIcon(on bool) string {
	if on {
		return IconOn
	}
	return IconOff
}
