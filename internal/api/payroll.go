package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// MyPayslips lists the current employee's payslips, newest first.
func (c *Client) MyPayslips(ctx context.Context, limit int) (*PayslipListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out PayslipListResponse
	if err := c.do(ctx, http.MethodGet, "/payroll/my-payslips", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayrollEmployees lists employees with their salary structures for
// payroll administration.
func (c *Client) PayrollEmployees(ctx context.Context, search string) (*EmployeeListResponse, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var out EmployeeListResponse
	if err := c.do(ctx, http.MethodGet, "/payroll/admin/employees", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePayslip creates a payslip for the given month (YYYY-MM).
func (c *Client) GeneratePayslip(ctx context.Context, employeeID, monthYear string) (*Payslip, error) {
	body := map[string]string{
		"employee_id": employeeID,
		"month_year":  monthYear,
	}
	var out struct {
		Message string  `json:"message"`
		Payslip Payslip `json:"payslip"`
	}
	if err := c.do(ctx, http.MethodPost, "/payroll/admin/generate-payslip", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out.Payslip, nil
}

// AllPayslips queries generated payslips, optionally by employee,
// month, or status.
func (c *Client) AllPayslips(ctx context.Context, employeeID, monthYear, status string, limit int) (*PayslipListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if employeeID != "" {
		query.Set("employee_id", employeeID)
	}
	if monthYear != "" {
		query.Set("month_year", monthYear)
	}
	if status != "" {
		query.Set("status", status)
	}

	var out PayslipListResponse
	if err := c.do(ctx, http.MethodGet, "/payroll/admin/payslips", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPayslipPaid marks a generated payslip as paid out.
func (c *Client) MarkPayslipPaid(ctx context.Context, payslipID string) (*MessageResponse, error) {
	var out MessageResponse
	endpoint := "/payroll/admin/payslip/" + payslipID + "/mark-paid"
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
