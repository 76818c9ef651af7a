// Package cmd holds the dayflow command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "HR management from the terminal",
	Long: `dayflow is the command-line client for the Dayflow HR platform.
Employees punch attendance, apply for leave, submit timesheets, and read
payslips; managers review what their reports submit; admins run the
whole directory. An AI assistant answers HR questions in a chat panel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx so in-flight API calls
// stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
