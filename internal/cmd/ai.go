package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/authz"
	"github.com/dayflowhq/dayflow/internal/tui"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Ask the Dayflow assistant",
	Long: `Talk to the AI assistant about your HR data, or pull generated
insight reports.

Examples:
  # Open the interactive chat panel
  dayflow ai chat

  # One-shot question without the panel
  dayflow ai chat "how much leave do I have left?"

  # Generated reports
  dayflow ai insights --type attendance
  dayflow ai quick`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var insightsType string

var aiChatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Chat with the assistant",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAIChat,
}

var aiInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show a generated insight report",
	RunE:  runAIInsights,
}

var aiQuickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Show the quick insight summary",
	RunE:  runAIQuick,
}

func init() {
	aiInsightsCmd.Flags().StringVar(&insightsType, "type", "general", "insight type (general, attendance, leave, payroll)")

	aiCmd.AddCommand(aiChatCmd)
	aiCmd.AddCommand(aiInsightsCmd)
	aiCmd.AddCommand(aiQuickCmd)

	rootCmd.AddCommand(aiCmd)
}

func runAIChat(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	// One-shot mode skips the panel.
	if len(args) == 1 {
		resp, err := app.Client.Chat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(resp.Response)
		return nil
	}

	model := tui.NewChatModel(cmd.Context(), app.Client)
	_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	return err
}

func runAIInsights(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.Insights(cmd.Context(), insightsType)
	if err != nil {
		return err
	}
	fmt.Println(resp.Insights)
	return nil
}

func runAIQuick(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.QuickInsights(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(resp.Insights)
	return nil
}
