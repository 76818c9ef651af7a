package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/authz"
	"github.com/dayflowhq/dayflow/internal/views"
)

var attendanceCmd = &cobra.Command{
	Use:     "attendance",
	Aliases: []string{"att"},
	Short:   "Punch and review attendance",
	Long: `Check in and out, and review your attendance.

Examples:
  dayflow attendance checkin
  dayflow attendance checkout
  dayflow attendance today
  dayflow attendance weekly
  dayflow attendance history --from 2026-08-01 --to 2026-08-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	punchDate    string
	historyFrom  string
	historyTo    string
	historyLimit int
)

var attendanceCheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check in for the day",
	RunE:  runCheckin,
}

var attendanceCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check out for the day",
	RunE:  runCheckout,
}

var attendanceTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's attendance",
	RunE:  runAttendanceToday,
}

var attendanceWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show this week's attendance grid",
	Long: `Show the Sunday-to-Saturday grid for the current week. Days
without a record show as Absent; configured weekend days show as
Weekend. Today's row is marked.`,
	RunE: runAttendanceWeekly,
}

var attendanceHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past attendance records",
	RunE:  runAttendanceHistory,
}

var attendanceManagersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List managers you can submit timesheets to",
	RunE:  runAttendanceManagers,
}

func init() {
	attendanceCheckinCmd.Flags().StringVar(&punchDate, "date", "", "date to punch (YYYY-MM-DD, default today)")
	attendanceCheckoutCmd.Flags().StringVar(&punchDate, "date", "", "date to punch (YYYY-MM-DD, default today)")

	attendanceHistoryCmd.Flags().StringVar(&historyFrom, "from", "", "start date (YYYY-MM-DD)")
	attendanceHistoryCmd.Flags().StringVar(&historyTo, "to", "", "end date (YYYY-MM-DD)")
	attendanceHistoryCmd.Flags().IntVar(&historyLimit, "limit", 30, "maximum records to show")

	attendanceCmd.AddCommand(attendanceCheckinCmd)
	attendanceCmd.AddCommand(attendanceCheckoutCmd)
	attendanceCmd.AddCommand(attendanceTodayCmd)
	attendanceCmd.AddCommand(attendanceWeeklyCmd)
	attendanceCmd.AddCommand(attendanceHistoryCmd)
	attendanceCmd.AddCommand(attendanceManagersCmd)

	rootCmd.AddCommand(attendanceCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.CheckIn(cmd.Context(), punchDate)
	if err != nil {
		return err
	}

	fmt.Println(resp.Message)
	if resp.Attendance != nil && resp.Attendance.CheckIn != "" {
		fmt.Printf("Checked in at %s\n", resp.Attendance.CheckIn)
	}
	return nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.CheckOut(cmd.Context(), punchDate)
	if err != nil {
		return err
	}

	fmt.Println(resp.Message)
	if resp.Attendance != nil && resp.Attendance.TotalHours > 0 {
		fmt.Printf("Total hours: %.2f\n", resp.Attendance.TotalHours)
	}
	return nil
}

func runAttendanceToday(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	day, err := app.Client.TodayAttendance(cmd.Context())
	if err != nil {
		return err
	}

	heading("Today")
	w := newTable()
	fmt.Fprintf(w, "Status\t%s\n", statusBadge(orDash(day.Status)))
	fmt.Fprintf(w, "Check-in\t%s\n", orDash(day.CheckIn))
	fmt.Fprintf(w, "Check-out\t%s\n", orDash(day.CheckOut))
	if day.TotalHours > 0 {
		fmt.Fprintf(w, "Hours\t%.2f\n", day.TotalHours)
	}
	return w.Flush()
}

func runAttendanceWeekly(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	week, err := app.Client.WeeklyAttendance(cmd.Context())
	if err != nil {
		return err
	}

	grid := views.WeeklyGrid(week.Attendance, time.Now(), app.Config.WeekendDays())

	heading(fmt.Sprintf("Week %s to %s", week.WeekStart, week.WeekEnd))
	w := newTable()
	fmt.Fprintln(w, "Day\tDate\tStatus\tIn\tOut\tHours")
	for _, day := range grid {
		marker := ""
		if day.Today {
			marker = " ←"
		}
		hours := "-"
		if day.TotalHours > 0 {
			hours = fmt.Sprintf("%.2f", day.TotalHours)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%s\n",
			day.Weekday.String()[:3],
			day.Date.Format("2006-01-02"),
			statusBadge(string(day.Status)),
			orDash(day.CheckIn),
			orDash(day.CheckOut),
			hours,
			marker,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("Total hours: %.2f\n", week.TotalHours)
	return nil
}

func runAttendanceHistory(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.AttendanceHistory(cmd.Context(), historyFrom, historyTo, historyLimit)
	if err != nil {
		return err
	}

	if len(resp.Attendance) == 0 {
		fmt.Println("No attendance records.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "Date\tStatus\tIn\tOut\tHours")
	for _, day := range resp.Attendance {
		hours := "-"
		if day.TotalHours > 0 {
			hours = fmt.Sprintf("%.2f", day.TotalHours)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			day.Date, statusBadge(orDash(day.Status)),
			orDash(day.CheckIn), orDash(day.CheckOut), hours)
	}
	return w.Flush()
}

func runAttendanceManagers(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	managers, err := app.Client.Managers(cmd.Context())
	if err != nil {
		return err
	}

	if len(managers) == 0 {
		fmt.Println("No managers available.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tName\tEmail")
	for _, m := range managers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ManagerID, m.Name, orDash(m.Email))
	}
	return w.Flush()
}
