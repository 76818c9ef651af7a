package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Employees queries the employee directory. search matches name/email,
// department filters exactly.
func (c *Client) Employees(ctx context.Context, search, department string, limit int) (*EmployeeListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if search != "" {
		query.Set("search", search)
	}
	if department != "" {
		query.Set("department", department)
	}

	var out EmployeeListResponse
	if err := c.do(ctx, http.MethodGet, "/admin/employees", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Employee fetches a single employee record.
func (c *Client) Employee(ctx context.Context, employeeID string) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodGet, "/admin/employees/"+employeeID, nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee edits an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, fields map[string]any) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/employees/"+employeeID, fields, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployeeSalary replaces an employee's salary structure.
func (c *Client) UpdateEmployeeSalary(ctx context.Context, employeeID string, salary Salary) (*MessageResponse, error) {
	var out MessageResponse
	endpoint := "/admin/employees/" + employeeID + "/salary"
	if err := c.do(ctx, http.MethodPut, endpoint, salary, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllAttendance queries attendance across employees, optionally by date
// and employee.
func (c *Client) AllAttendance(ctx context.Context, date, employeeID string, limit int) (*AttendanceListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if date != "" {
		query.Set("date", date)
	}
	if employeeID != "" {
		query.Set("employee_id", employeeID)
	}

	var out AttendanceListResponse
	if err := c.do(ctx, http.MethodGet, "/admin/attendance/all", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats fetches the organization-wide dashboard summary.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Departments lists the distinct department names.
func (c *Client) Departments(ctx context.Context) ([]string, error) {
	var out DepartmentsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/departments", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return out.Departments, nil
}
