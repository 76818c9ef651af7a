package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	"github.com/dayflowhq/dayflow/internal/views"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your landing dashboard",
	Long: `Render the dashboard for your role. The panels are fetched
concurrently; if any fetch fails the whole render fails rather than
showing a half-filled dashboard.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	sess := app.Session.Current()
	switch sess.Role {
	case authz.RoleAdmin:
		return renderAdminDashboard(cmd.Context(), app)
	case authz.RoleManager:
		return renderManagerDashboard(cmd.Context(), app)
	default:
		return renderEmployeeDashboard(cmd.Context(), app)
	}
}

func renderEmployeeDashboard(ctx context.Context, app *App) error {
	var (
		week   *api.WeeklyAttendance
		leaves *api.LeaveListResponse
		slips  *api.PayslipListResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		week, err = app.Client.WeeklyAttendance(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = app.Client.MyLeaves(gctx, "", 5)
		return err
	})
	g.Go(func() error {
		var err error
		slips, err = app.Client.MyPayslips(gctx, 1)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	heading("This week")
	grid := views.WeeklyGrid(week.Attendance, time.Now(), app.Config.WeekendDays())
	w := newTable()
	for _, day := range grid {
		marker := ""
		if day.Today {
			marker = " ←"
		}
		fmt.Fprintf(w, "%s\t%s%s\n", day.Weekday.String()[:3], statusBadge(string(day.Status)), marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	balance := views.LeaveBalance(leaves.Leaves, app.Config.Leave.Allowance)
	fmt.Printf("\nLeave balance: %d of %d\n", balance, app.Config.Leave.Allowance)

	if len(slips.Payslips) > 0 {
		latest := slips.Payslips[0]
		fmt.Printf("Latest payslip: %s, net %d (%s)\n",
			latest.MonthYear, latest.NetSalary, orDash(latest.Status))
	}
	return nil
}

func renderManagerDashboard(ctx context.Context, app *App) error {
	var (
		stats  *api.DashboardStats
		sheets []api.Timesheet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = app.Client.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sheets, err = app.Client.PendingTimesheets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	heading("Your team")
	printStats(stats)

	if len(sheets) > 0 {
		fmt.Println()
		heading("Timesheets awaiting review")
		if err := printTimesheets(sheets, true); err != nil {
			return err
		}
	}
	return nil
}

func renderAdminDashboard(ctx context.Context, app *App) error {
	var (
		stats   *api.DashboardStats
		pending *api.LeaveListResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = app.Client.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = app.Client.PendingLeaves(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	heading("Company")
	printStats(stats)

	if len(pending.Leaves) > 0 {
		fmt.Println()
		heading("Leaves awaiting review")
		if err := printLeaves(pending.Leaves, true); err != nil {
			return err
		}
	}
	return nil
}
