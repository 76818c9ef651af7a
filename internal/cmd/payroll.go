package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Payslips and payroll runs",
	Long: `Read your payslips, or (as admin) generate and settle payslips
for the company.

Examples:
  dayflow payroll payslips
  dayflow payroll generate EMP-001 --month 2026-08
  dayflow payroll all --status Generated
  dayflow payroll mark-paid <payslip-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	payrollLimit    int
	payrollMonth    string
	payrollStatus   string
	payrollEmployee string
	payrollSearch   string
)

var payrollPayslipsCmd = &cobra.Command{
	Use:   "payslips",
	Short: "Show your payslips",
	RunE:  runPayrollPayslips,
}

var payrollEmployeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees with salary structures (admin)",
	RunE:  runPayrollEmployees,
}

var payrollGenerateCmd = &cobra.Command{
	Use:   "generate <employee-id>",
	Short: "Generate a monthly payslip (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayrollGenerate,
}

var payrollAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List generated payslips (admin)",
	RunE:  runPayrollAll,
}

var payrollMarkPaidCmd = &cobra.Command{
	Use:   "mark-paid <payslip-id>",
	Short: "Mark a payslip as paid (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayrollMarkPaid,
}

func init() {
	payrollPayslipsCmd.Flags().IntVar(&payrollLimit, "limit", 12, "maximum payslips to show")

	payrollEmployeesCmd.Flags().StringVar(&payrollSearch, "search", "", "match name, email, or ID")

	payrollGenerateCmd.Flags().StringVar(&payrollMonth, "month", "", "month to generate (YYYY-MM)")

	payrollAllCmd.Flags().StringVar(&payrollEmployee, "employee", "", "filter by employee ID")
	payrollAllCmd.Flags().StringVar(&payrollMonth, "month", "", "filter by month (YYYY-MM)")
	payrollAllCmd.Flags().StringVar(&payrollStatus, "status", "", "filter by status (Generated, Paid)")
	payrollAllCmd.Flags().IntVar(&payrollLimit, "limit", 50, "maximum payslips to show")

	payrollCmd.AddCommand(payrollPayslipsCmd)
	payrollCmd.AddCommand(payrollEmployeesCmd)
	payrollCmd.AddCommand(payrollGenerateCmd)
	payrollCmd.AddCommand(payrollAllCmd)
	payrollCmd.AddCommand(payrollMarkPaidCmd)

	rootCmd.AddCommand(payrollCmd)
}

func runPayrollPayslips(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.MyPayslips(cmd.Context(), payrollLimit)
	if err != nil {
		return err
	}

	if len(resp.Payslips) == 0 {
		fmt.Println("No payslips yet.")
		return nil
	}
	return printPayslips(resp.Payslips, false)
}

func runPayrollEmployees(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.PayrollEmployees(cmd.Context(), payrollSearch)
	if err != nil {
		return err
	}

	if len(resp.Employees) == 0 {
		fmt.Println("No employees found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tName\tBasic\tHRA\tAllowances\tDeductions")
	for _, e := range resp.Employees {
		if e.Salary == nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", e.EmployeeID, e.Name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			e.EmployeeID, e.Name, e.Salary.Basic, e.Salary.HRA,
			e.Salary.Allowances, e.Salary.Deductions)
	}
	return w.Flush()
}

func runPayrollGenerate(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	if payrollMonth == "" {
		return dferrors.NewInputRequiredError("month")
	}

	slip, err := app.Client.GeneratePayslip(cmd.Context(), args[0], payrollMonth)
	if err != nil {
		return err
	}

	heading(fmt.Sprintf("Payslip %s for %s", slip.MonthYear, orDash(slip.Name)))
	w := newTable()
	fmt.Fprintf(w, "Basic\t%d\n", slip.Basic)
	fmt.Fprintf(w, "HRA\t%d\n", slip.HRA)
	fmt.Fprintf(w, "Allowances\t%d\n", slip.Allowances)
	fmt.Fprintf(w, "Deductions\t%d\n", slip.Deductions)
	fmt.Fprintf(w, "Net\t%d\n", slip.NetSalary)
	return w.Flush()
}

func runPayrollAll(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.AllPayslips(cmd.Context(), payrollEmployee, payrollMonth, payrollStatus, payrollLimit)
	if err != nil {
		return err
	}

	if len(resp.Payslips) == 0 {
		fmt.Println("No payslips.")
		return nil
	}
	return printPayslips(resp.Payslips, true)
}

func runPayrollMarkPaid(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.MarkPayslipPaid(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func printPayslips(slips []api.Payslip, withEmployee bool) error {
	w := newTable()
	if withEmployee {
		fmt.Fprintln(w, "ID\tEmployee\tMonth\tNet\tStatus")
	} else {
		fmt.Fprintln(w, "Month\tBasic\tDeductions\tNet\tStatus")
	}
	for _, s := range slips {
		if withEmployee {
			name := s.Name
			if name == "" {
				name = s.EmployeeID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				s.ID, name, s.MonthYear, s.NetSalary, statusBadge(orDash(s.Status)))
		} else {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
				s.MonthYear, s.Basic, s.Deductions, s.NetSalary, statusBadge(orDash(s.Status)))
		}
	}
	return w.Flush()
}
