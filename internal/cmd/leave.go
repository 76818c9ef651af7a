package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/views"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Apply for and review leave",
	Long: `Apply for leave, track your applications and remaining balance,
and (as a manager) review what your reports submit.

Examples:
  dayflow leave apply --type Casual --from 2026-09-10 --to 2026-09-12 --reason "family visit"
  dayflow leave list
  dayflow leave cancel <leave-id>
  dayflow leave pending
  dayflow leave review <leave-id> --approve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	leaveType    string
	leaveFrom    string
	leaveTo      string
	leaveReason  string
	leaveStatus  string
	leaveLimit   int
	leaveApprove bool
	leaveReject  bool
	leaveComment string
)

var leaveApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply for leave",
	RunE:  runLeaveApply,
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your leave applications and balance",
	RunE:  runLeaveList,
}

var leaveCancelCmd = &cobra.Command{
	Use:   "cancel <leave-id>",
	Short: "Cancel a pending leave application",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaveCancel,
}

var leavePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List leave applications awaiting your review",
	RunE:  runLeavePending,
}

var leaveReviewCmd = &cobra.Command{
	Use:   "review <leave-id>",
	Short: "Approve or reject a leave application",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaveReview,
}

var leaveAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every leave application (admin)",
	RunE:  runLeaveAll,
}

func init() {
	leaveApplyCmd.Flags().StringVar(&leaveType, "type", "", "leave type (Casual, Sick, Earned...)")
	leaveApplyCmd.Flags().StringVar(&leaveFrom, "from", "", "start date (YYYY-MM-DD)")
	leaveApplyCmd.Flags().StringVar(&leaveTo, "to", "", "end date (YYYY-MM-DD)")
	leaveApplyCmd.Flags().StringVar(&leaveReason, "reason", "", "reason for the leave")

	leaveListCmd.Flags().StringVar(&leaveStatus, "status", "", "filter by status (Pending, Approved, Rejected)")
	leaveListCmd.Flags().IntVar(&leaveLimit, "limit", 20, "maximum applications to show")

	leaveReviewCmd.Flags().BoolVar(&leaveApprove, "approve", false, "approve the application")
	leaveReviewCmd.Flags().BoolVar(&leaveReject, "reject", false, "reject the application")
	leaveReviewCmd.Flags().StringVar(&leaveComment, "comment", "", "review comment")

	leaveAllCmd.Flags().StringVar(&leaveStatus, "status", "", "filter by status")
	leaveAllCmd.Flags().IntVar(&leaveLimit, "limit", 50, "maximum applications to show")

	leaveCmd.AddCommand(leaveApplyCmd)
	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveCancelCmd)
	leaveCmd.AddCommand(leavePendingCmd)
	leaveCmd.AddCommand(leaveReviewCmd)
	leaveCmd.AddCommand(leaveAllCmd)

	rootCmd.AddCommand(leaveCmd)
}

func runLeaveApply(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	if leaveType == "" {
		return dferrors.NewInputRequiredError("type")
	}
	if leaveFrom == "" {
		return dferrors.NewInputRequiredError("from")
	}
	if leaveTo == "" {
		return dferrors.NewInputRequiredError("to")
	}

	days, err := views.LeaveDays(leaveFrom, leaveTo)
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeInputInvalid, "dates must be YYYY-MM-DD", err)
	}
	if days < 1 {
		return dferrors.New(dferrors.ErrCodeInputInvalid, "end date is before start date")
	}

	resp, err := app.Client.ApplyLeave(cmd.Context(), api.LeaveRequest{
		LeaveType: leaveType,
		StartDate: leaveFrom,
		EndDate:   leaveTo,
		Reason:    leaveReason,
	})
	if err != nil {
		return err
	}

	fmt.Println(resp.Message)
	fmt.Printf("Applied for %d day(s) of %s leave.\n", days, leaveType)
	return nil
}

func runLeaveList(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.MyLeaves(cmd.Context(), leaveStatus, leaveLimit)
	if err != nil {
		return err
	}

	balance := views.LeaveBalance(resp.Leaves, app.Config.Leave.Allowance)
	fmt.Printf("Leave balance: %d of %d\n\n", balance, app.Config.Leave.Allowance)

	if len(resp.Leaves) == 0 {
		fmt.Println("No leave applications.")
		return nil
	}

	return printLeaves(resp.Leaves, false)
}

func runLeaveCancel(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.CancelLeave(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runLeavePending(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleManager); err != nil {
		return err
	}

	resp, err := app.Client.PendingLeaves(cmd.Context())
	if err != nil {
		return err
	}

	if len(resp.Leaves) == 0 {
		fmt.Println("Nothing awaiting review.")
		return nil
	}
	return printLeaves(resp.Leaves, true)
}

func runLeaveReview(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleManager); err != nil {
		return err
	}

	action, err := reviewAction(leaveApprove, leaveReject)
	if err != nil {
		return err
	}

	resp, err := app.Client.ReviewLeave(cmd.Context(), args[0], action, leaveComment)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runLeaveAll(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.AllLeaves(cmd.Context(), leaveStatus, leaveLimit)
	if err != nil {
		return err
	}

	if len(resp.Leaves) == 0 {
		fmt.Println("No leave applications.")
		return nil
	}
	return printLeaves(resp.Leaves, true)
}

// reviewAction maps the approve/reject flag pair onto the backend's
// action verb, rejecting ambiguous input.
func reviewAction(approve, reject bool) (string, error) {
	switch {
	case approve && reject:
		return "", dferrors.New(dferrors.ErrCodeInputInvalid, "pass either --approve or --reject, not both")
	case approve:
		return "approve", nil
	case reject:
		return "reject", nil
	default:
		return "", dferrors.New(dferrors.ErrCodeInputRequired, "pass --approve or --reject")
	}
}

func printLeaves(leaves []api.Leave, withEmployee bool) error {
	w := newTable()
	if withEmployee {
		fmt.Fprintln(w, "ID\tEmployee\tType\tFrom\tTo\tDays\tStatus")
	} else {
		fmt.Fprintln(w, "ID\tType\tFrom\tTo\tDays\tStatus")
	}
	for _, l := range leaves {
		days := "-"
		if d, err := views.LeaveDays(l.StartDate, l.EndDate); err == nil {
			days = fmt.Sprintf("%d", d)
		}
		if withEmployee {
			name := l.EmployeeName
			if name == "" {
				name = l.EmployeeID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				l.ID, name, l.LeaveType, l.StartDate, l.EndDate, days, statusBadge(l.Status))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				l.ID, l.LeaveType, l.StartDate, l.EndDate, days, statusBadge(l.Status))
		}
	}
	return w.Flush()
}
