package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SubmitTimesheet submits the current week's attendance to a manager
// for review.
func (c *Client) SubmitTimesheet(ctx context.Context, managerID string) (*MessageResponse, error) {
	body := map[string]string{"manager_id": managerID}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/timesheet/submit", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimesheetStatus fetches the current week's submission state.
func (c *Client) TimesheetStatus(ctx context.Context) (*TimesheetStatusResponse, error) {
	var out TimesheetStatusResponse
	if err := c.do(ctx, http.MethodGet, "/timesheet/status", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimesheetHistory fetches past submissions, newest first.
func (c *Client) TimesheetHistory(ctx context.Context, limit int) ([]Timesheet, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out struct {
		Timesheets []Timesheet `json:"timesheets"`
	}
	if err := c.do(ctx, http.MethodGet, "/timesheet/history", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return out.Timesheets, nil
}

// PendingTimesheets lists submissions awaiting the manager's review.
func (c *Client) PendingTimesheets(ctx context.Context) ([]Timesheet, error) {
	var out struct {
		Timesheets []Timesheet `json:"timesheets"`
	}
	if err := c.do(ctx, http.MethodGet, "/timesheet/manager/pending", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return out.Timesheets, nil
}

// AllTimesheets lists the manager's timesheets, optionally filtered by
// status.
func (c *Client) AllTimesheets(ctx context.Context, status string, limit int) ([]Timesheet, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", status)
	}

	var out struct {
		Timesheets []Timesheet `json:"timesheets"`
	}
	if err := c.do(ctx, http.MethodGet, "/timesheet/manager/all", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return out.Timesheets, nil
}

// ReviewTimesheet approves or rejects an employee's weekly timesheet.
// action is "approve" or "reject".
func (c *Client) ReviewTimesheet(ctx context.Context, employeeID, weekStart, action, comments string) (*MessageResponse, error) {
	body := map[string]string{
		"employee_id": employeeID,
		"week_start":  weekStart,
		"action":      action,
		"comments":    comments,
	}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/timesheet/manager/review", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
