package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func heading(s string) {
	fmt.Println(headingStyle.Render(s))
}

// statusBadge colors a backend status word for terminal output.
func statusBadge(status string) string {
	switch status {
	case "Approved", "Present", "Paid", "ok", "Verified":
		return okStyle.Render(status)
	case "Pending", "Generated", "Weekend":
		return warnStyle.Render(status)
	case "Rejected", "Absent", "Overdue":
		return badStyle.Render(status)
	default:
		return status
	}
}

// newTable returns a tabwriter on stdout; call Flush when done.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
