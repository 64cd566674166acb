package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	loadingTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	loadingStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	loadingBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)
)

// LoadingOverlay is a one-line box with a spinner, shown while a resize is
// waiting to settle. The spinner is owned by the caller, who also ticks it.
type LoadingOverlay struct {
	title   string
	status  string
	spinner *spinner.Model
	width   int
}

func NewLoadingOverlay(title string, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{title: title, spinner: spinner}
}

// SetStatus sets the text after the title, usually the pending size.
func (l *LoadingOverlay) SetStatus(status string) {
	l.status = status
}

// SetWidth sets the outer width of the box. Zero sizes it to the content.
func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

func (l *LoadingOverlay) Render() string {
	parts := make([]string, 0, 3)
	if l.spinner != nil {
		parts = append(parts, l.spinner.View())
	}
	parts = append(parts, loadingTitleStyle.Render(l.title))
	if l.status != "" {
		parts = append(parts, loadingStatusStyle.Render(l.status))
	}
	content := strings.Join(parts, " ")

	box := loadingBoxStyle
	if l.width > 0 {
		// Border and padding take two columns on each side.
		inner := max(l.width-4, 1)
		content = truncate.StringWithTail(content, uint(inner), "…")
		box = box.Width(l.width - 2)
	}
	return box.Render(content)
}
