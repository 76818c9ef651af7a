package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity and session health",
	Long: `Probe the configured backend and report on the stored session.

Examples:
  dayflow doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	fmt.Printf("Backend: %s\n", app.Config.API.URL)

	start := time.Now()
	health, err := app.Client.Health(cmd.Context())
	if err != nil {
		fmt.Printf("Health:  %s (%v)\n", badStyle.Render("unreachable"), err)
		return err
	}
	fmt.Printf("Health:  %s (%s)\n",
		statusBadge(health.Status), time.Since(start).Round(time.Millisecond))

	sess := app.Session.Current()
	if sess == nil {
		fmt.Println("Session: not logged in")
		return nil
	}

	// Confirm the stored token is still accepted.
	user, err := app.Client.CurrentUser(cmd.Context())
	if err != nil {
		fmt.Printf("Session: stored for %s but rejected (%v)\n", sess.User.Email, err)
		return err
	}
	fmt.Printf("Session: logged in as %s (%s)\n", user.Email, sess.Role)
	return nil
}
