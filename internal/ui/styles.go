package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	progressStyle = lipgloss.NewStyle().Faint(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	choiceStyle   = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
)

var (
	successBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Render("OK")
	errorBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render("ERROR")
)

// Notify prints a one-line status notice for the non-interactive commands,
// the terminal's stand-in for the web app's toast messages.
func Notify(w io.Writer, ok bool, message string) {
	badge := successBadge
	if !ok {
		badge = errorBadge
	}
	fmt.Fprintf(w, "%s %s\n", badge, message)
}
