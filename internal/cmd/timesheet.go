package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

var timesheetCmd = &cobra.Command{
	Use:     "timesheet",
	Aliases: []string{"ts"},
	Short:   "Submit and review weekly timesheets",
	Long: `Submit the current week's attendance to a manager and track the
review. Managers approve or reject what their reports submit.

Examples:
  dayflow timesheet submit --manager MGR-003
  dayflow timesheet status
  dayflow timesheet history
  dayflow timesheet pending
  dayflow timesheet review EMP-001 --week 2026-08-23 --approve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	tsManagerID string
	tsLimit     int
	tsStatus    string
	tsWeekStart string
	tsApprove   bool
	tsReject    bool
	tsComments  string
)

var timesheetSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit this week's timesheet",
	Long: `Submit the current week's attendance for manager review. The
backend enforces the submission window; use 'dayflow attendance
managers' to find manager IDs.`,
	RunE: runTimesheetSubmit,
}

var timesheetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show this week's timesheet status",
	RunE:  runTimesheetStatus,
}

var timesheetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past timesheets",
	RunE:  runTimesheetHistory,
}

var timesheetPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List timesheets awaiting your review",
	RunE:  runTimesheetPending,
}

var timesheetReviewCmd = &cobra.Command{
	Use:   "review <employee-id>",
	Short: "Approve or reject a submitted timesheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimesheetReview,
}

var timesheetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every timesheet (admin)",
	RunE:  runTimesheetAll,
}

func init() {
	timesheetSubmitCmd.Flags().StringVar(&tsManagerID, "manager", "", "manager ID to submit to")

	timesheetHistoryCmd.Flags().IntVar(&tsLimit, "limit", 20, "maximum timesheets to show")

	timesheetReviewCmd.Flags().StringVar(&tsWeekStart, "week", "", "week start date of the timesheet (YYYY-MM-DD)")
	timesheetReviewCmd.Flags().BoolVar(&tsApprove, "approve", false, "approve the timesheet")
	timesheetReviewCmd.Flags().BoolVar(&tsReject, "reject", false, "reject the timesheet")
	timesheetReviewCmd.Flags().StringVar(&tsComments, "comment", "", "review comment")

	timesheetAllCmd.Flags().StringVar(&tsStatus, "status", "", "filter by status")
	timesheetAllCmd.Flags().IntVar(&tsLimit, "limit", 50, "maximum timesheets to show")

	timesheetCmd.AddCommand(timesheetSubmitCmd)
	timesheetCmd.AddCommand(timesheetStatusCmd)
	timesheetCmd.AddCommand(timesheetHistoryCmd)
	timesheetCmd.AddCommand(timesheetPendingCmd)
	timesheetCmd.AddCommand(timesheetReviewCmd)
	timesheetCmd.AddCommand(timesheetAllCmd)

	rootCmd.AddCommand(timesheetCmd)
}

func runTimesheetSubmit(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	if tsManagerID == "" {
		return dferrors.NewInputRequiredError("manager")
	}

	eligibility, err := app.Client.CanSubmitTimesheet(cmd.Context())
	if err != nil {
		return err
	}
	if !eligibility.CanSubmit {
		msg := eligibility.Reason
		if msg == "" {
			msg = "timesheet cannot be submitted right now"
		}
		return dferrors.New(dferrors.ErrCodeInputInvalid, msg)
	}

	resp, err := app.Client.SubmitTimesheet(cmd.Context(), tsManagerID)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runTimesheetStatus(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.TimesheetStatus(cmd.Context())
	if err != nil {
		return err
	}

	if !resp.Submitted {
		week := resp.WeekStart
		if week != "" {
			fmt.Printf("No timesheet submitted for the week of %s.\n", week)
		} else {
			fmt.Println("No timesheet submitted this week.")
		}
		return nil
	}

	ts := resp.Timesheet
	heading("This week's timesheet")
	w := newTable()
	fmt.Fprintf(w, "Week\t%s to %s\n", ts.WeekStart, orDash(ts.WeekEnd))
	fmt.Fprintf(w, "Status\t%s\n", statusBadge(ts.Status))
	if ts.TotalHours > 0 {
		fmt.Fprintf(w, "Hours\t%.2f\n", ts.TotalHours)
	}
	if ts.Comments != "" {
		fmt.Fprintf(w, "Comments\t%s\n", ts.Comments)
	}
	return w.Flush()
}

func runTimesheetHistory(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	sheets, err := app.Client.TimesheetHistory(cmd.Context(), tsLimit)
	if err != nil {
		return err
	}

	if len(sheets) == 0 {
		fmt.Println("No timesheets yet.")
		return nil
	}
	return printTimesheets(sheets, false)
}

func runTimesheetPending(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleManager); err != nil {
		return err
	}

	sheets, err := app.Client.PendingTimesheets(cmd.Context())
	if err != nil {
		return err
	}

	if len(sheets) == 0 {
		fmt.Println("Nothing awaiting review.")
		return nil
	}
	return printTimesheets(sheets, true)
}

func runTimesheetReview(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleManager); err != nil {
		return err
	}

	if tsWeekStart == "" {
		return dferrors.NewInputRequiredError("week")
	}
	action, err := reviewAction(tsApprove, tsReject)
	if err != nil {
		return err
	}

	resp, err := app.Client.ReviewTimesheet(cmd.Context(), args[0], tsWeekStart, action, tsComments)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runTimesheetAll(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	sheets, err := app.Client.AllTimesheets(cmd.Context(), tsStatus, tsLimit)
	if err != nil {
		return err
	}

	if len(sheets) == 0 {
		fmt.Println("No timesheets.")
		return nil
	}
	return printTimesheets(sheets, true)
}

func printTimesheets(sheets []api.Timesheet, withEmployee bool) error {
	w := newTable()
	if withEmployee {
		fmt.Fprintln(w, "Employee\tWeek\tHours\tStatus")
	} else {
		fmt.Fprintln(w, "Week\tHours\tStatus")
	}
	for _, ts := range sheets {
		hours := "-"
		if ts.TotalHours > 0 {
			hours = fmt.Sprintf("%.2f", ts.TotalHours)
		}
		if withEmployee {
			name := ts.EmployeeName
			if name == "" {
				name = ts.EmployeeID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, ts.WeekStart, hours, statusBadge(ts.Status))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ts.WeekStart, hours, statusBadge(ts.Status))
		}
	}
	return w.Flush()
}
