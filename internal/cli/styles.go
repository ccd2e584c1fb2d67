package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// reportStyles contains the lipgloss styles used by command output.
type reportStyles struct {
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
}

// newReportStyles builds styles for the validation and generation
// reports. Without a TTY on stdout every style degrades to plain text.
func newReportStyles() reportStyles {
	if !hasTTY() {
		plain := lipgloss.NewStyle()
		return reportStyles{Pass: plain, Fail: plain, Muted: plain, Heading: plain}
	}
	return reportStyles{
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Heading: lipgloss.NewStyle().Bold(true),
	}
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
