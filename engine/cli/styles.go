package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatFloat(a)
	}
	return strings.Join(parts, ", ")
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printValue(w io.Writer, name string, args []float64, value float64) {
	fmt.Fprintf(w, "%s(%s) = %s\n", nameStyle.Render(name), formatArgs(args), valueStyle.Render(formatFloat(value)))
}

func printError(w io.Writer, name string, args []float64, err string) {
	fmt.Fprintf(w, "%s(%s) %s\n", nameStyle.Render(name), formatArgs(args), errorStyle.Render(err))
}
