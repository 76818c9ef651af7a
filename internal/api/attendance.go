package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CheckIn records today's check-in. A non-empty date (YYYY-MM-DD)
// targets that day instead; the backend rejects weekend dates.
func (c *Client) CheckIn(ctx context.Context, date string) (*CheckResponse, error) {
	body := map[string]any{"date": nil}
	if date != "" {
		body["date"] = date
	}
	var out CheckResponse
	if err := c.do(ctx, http.MethodPost, "/attendance/check-in", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckOut records today's check-out, or the given date's.
func (c *Client) CheckOut(ctx context.Context, date string) (*CheckResponse, error) {
	body := map[string]any{"date": nil}
	if date != "" {
		body["date"] = date
	}
	var out CheckResponse
	if err := c.do(ctx, http.MethodPost, "/attendance/check-out", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayAttendance fetches today's attendance record.
func (c *Client) TodayAttendance(ctx context.Context) (*AttendanceDay, error) {
	var out AttendanceDay
	if err := c.do(ctx, http.MethodGet, "/attendance/today", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// WeeklyAttendance fetches the current Sunday-to-Saturday window.
func (c *Client) WeeklyAttendance(ctx context.Context) (*WeeklyAttendance, error) {
	var out WeeklyAttendance
	if err := c.do(ctx, http.MethodGet, "/attendance/weekly", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AttendanceHistory fetches past records, newest first. Both dates must
// be set to filter by range; limit caps the result count.
func (c *Client) AttendanceHistory(ctx context.Context, startDate, endDate string, limit int) (*AttendanceListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if startDate != "" && endDate != "" {
		query.Set("start_date", startDate)
		query.Set("end_date", endDate)
	}

	var out AttendanceListResponse
	if err := c.do(ctx, http.MethodGet, "/attendance/history", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Managers lists the managers available for timesheet submission.
func (c *Client) Managers(ctx context.Context) ([]Manager, error) {
	var out struct {
		Managers []Manager `json:"managers"`
	}
	if err := c.do(ctx, http.MethodGet, "/attendance/managers", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return out.Managers, nil
}

// CanSubmitTimesheet reports whether the current week's timesheet can
// be submitted yet (submission opens at the end of the week).
func (c *Client) CanSubmitTimesheet(ctx context.Context) (*TimesheetEligibility, error) {
	var out TimesheetEligibility
	if err := c.do(ctx, http.MethodGet, "/attendance/can-submit-timesheet", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
