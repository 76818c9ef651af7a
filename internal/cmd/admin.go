package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/views"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the employee directory",
	Long: `Administer employees, salaries, and company-wide attendance.
All subcommands require the admin role.

Examples:
  dayflow admin employees --department Engineering
  dayflow admin employee EMP-001
  dayflow admin update EMP-001 --department Sales
  dayflow admin salary EMP-001 --basic 30000 --hra 10000
  dayflow admin attendance --date 2026-09-01
  dayflow admin stats
  dayflow admin departments`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	adminSearch     string
	adminDepartment string
	adminLimit      int
	adminDate       string
	adminEmployee   string

	updateDepartment string
	updateJobTitle   string
	updatePhone      string

	salaryBasic      int
	salaryHRA        int
	salaryAllowances int
	salaryDeductions int
)

var adminEmployeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees",
	RunE:  runAdminEmployees,
}

var adminEmployeeCmd = &cobra.Command{
	Use:   "employee <employee-id>",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminEmployee,
}

var adminUpdateCmd = &cobra.Command{
	Use:   "update <employee-id>",
	Short: "Update an employee record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUpdate,
}

var adminSalaryCmd = &cobra.Command{
	Use:   "salary <employee-id>",
	Short: "Set an employee's salary structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSalary,
}

var adminAttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Query company-wide attendance",
	RunE:  runAdminAttendance,
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show headcount and pending-work counters",
	RunE:  runAdminStats,
}

var adminDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List departments",
	RunE:  runAdminDepartments,
}

func init() {
	adminEmployeesCmd.Flags().StringVar(&adminSearch, "search", "", "match name, email, or ID")
	adminEmployeesCmd.Flags().StringVar(&adminDepartment, "department", "", "filter by department")
	adminEmployeesCmd.Flags().IntVar(&adminLimit, "limit", 50, "maximum employees to show")

	adminUpdateCmd.Flags().StringVar(&updateDepartment, "department", "", "department")
	adminUpdateCmd.Flags().StringVar(&updateJobTitle, "job-title", "", "job title")
	adminUpdateCmd.Flags().StringVar(&updatePhone, "phone", "", "phone number")

	adminSalaryCmd.Flags().IntVar(&salaryBasic, "basic", 0, "basic pay")
	adminSalaryCmd.Flags().IntVar(&salaryHRA, "hra", 0, "house rent allowance")
	adminSalaryCmd.Flags().IntVar(&salaryAllowances, "allowances", 0, "other allowances")
	adminSalaryCmd.Flags().IntVar(&salaryDeductions, "deductions", 0, "deductions")

	adminAttendanceCmd.Flags().StringVar(&adminDate, "date", "", "date to query (YYYY-MM-DD)")
	adminAttendanceCmd.Flags().StringVar(&adminEmployee, "employee", "", "filter by employee ID")
	adminAttendanceCmd.Flags().IntVar(&adminLimit, "limit", 100, "maximum records to show")

	adminCmd.AddCommand(adminEmployeesCmd)
	adminCmd.AddCommand(adminEmployeeCmd)
	adminCmd.AddCommand(adminUpdateCmd)
	adminCmd.AddCommand(adminSalaryCmd)
	adminCmd.AddCommand(adminAttendanceCmd)
	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminDepartmentsCmd)

	rootCmd.AddCommand(adminCmd)
}

func runAdminEmployees(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.Employees(cmd.Context(), adminSearch, adminDepartment, adminLimit)
	if err != nil {
		return err
	}

	if len(resp.Employees) == 0 {
		fmt.Println("No employees found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tName\tEmail\tDepartment\tTitle")
	for _, e := range resp.Employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.Name, e.Email, orDash(e.Department), orDash(e.JobTitle))
	}
	return w.Flush()
}

func runAdminEmployee(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	e, err := app.Client.Employee(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	heading(e.Name)
	w := newTable()
	fmt.Fprintf(w, "Employee ID\t%s\n", e.EmployeeID)
	fmt.Fprintf(w, "Email\t%s\n", e.Email)
	fmt.Fprintf(w, "Department\t%s\n", orDash(e.Department))
	fmt.Fprintf(w, "Job title\t%s\n", orDash(e.JobTitle))
	fmt.Fprintf(w, "Phone\t%s\n", orDash(e.Phone))
	if e.Salary != nil {
		fmt.Fprintf(w, "Net salary\t%d\n", views.NetSalary(*e.Salary))
	}
	return w.Flush()
}

func runAdminUpdate(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	fields := map[string]any{}
	if updateDepartment != "" {
		fields["department"] = updateDepartment
	}
	if updateJobTitle != "" {
		fields["job_title"] = updateJobTitle
	}
	if updatePhone != "" {
		fields["phone"] = updatePhone
	}
	if len(fields) == 0 {
		return dferrors.New(dferrors.ErrCodeInputRequired, "nothing to update").
			WithSuggestion("Pass at least one of --department, --job-title, --phone")
	}

	resp, err := app.Client.UpdateEmployee(cmd.Context(), args[0], fields)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runAdminSalary(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	salary := api.Salary{
		Basic:      salaryBasic,
		HRA:        salaryHRA,
		Allowances: salaryAllowances,
		Deductions: salaryDeductions,
	}

	resp, err := app.Client.UpdateEmployeeSalary(cmd.Context(), args[0], salary)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	fmt.Printf("Net: %d\n", views.NetSalary(salary))
	return nil
}

func runAdminAttendance(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.AllAttendance(cmd.Context(), adminDate, adminEmployee, adminLimit)
	if err != nil {
		return err
	}

	if len(resp.Attendance) == 0 {
		fmt.Println("No attendance records.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "Date\tEmployee\tStatus\tIn\tOut\tHours")
	for _, day := range resp.Attendance {
		name := day.Name
		if name == "" {
			name = day.EmployeeID
		}
		hours := "-"
		if day.TotalHours > 0 {
			hours = fmt.Sprintf("%.2f", day.TotalHours)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			day.Date, name, statusBadge(orDash(day.Status)),
			orDash(day.CheckIn), orDash(day.CheckOut), hours)
	}
	return w.Flush()
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	stats, err := app.Client.DashboardStats(cmd.Context())
	if err != nil {
		return err
	}

	printStats(stats)
	return nil
}

func printStats(stats *api.DashboardStats) {
	w := newTable()
	fmt.Fprintf(w, "Employees\t%d\n", stats.TotalEmployees)
	fmt.Fprintf(w, "Present today\t%d\n", stats.PresentToday)
	fmt.Fprintf(w, "Absent today\t%d\n", stats.AbsentToday)
	fmt.Fprintf(w, "Pending leaves\t%d\n", stats.PendingLeaves)
	fmt.Fprintf(w, "Pending timesheets\t%d\n", stats.PendingTimesheets)
	_ = w.Flush()
}

func runAdminDepartments(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	departments, err := app.Client.Departments(cmd.Context())
	if err != nil {
		return err
	}

	if len(departments) == 0 {
		fmt.Println("No departments yet.")
		return nil
	}
	for _, d := range departments {
		fmt.Println(d)
	}
	return nil
}
