package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// LeaveRequest is the leave application payload. Dates are YYYY-MM-DD;
// the range is inclusive on both ends.
type LeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// ApplyLeave submits a leave application.
func (c *Client) ApplyLeave(ctx context.Context, req LeaveRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/leave/apply", req, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyLeaves lists the current employee's leaves, optionally filtered by
// status.
func (c *Client) MyLeaves(ctx context.Context, status string, limit int) (*LeaveListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", status)
	}

	var out LeaveListResponse
	if err := c.do(ctx, http.MethodGet, "/leave/my-leaves", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelLeave withdraws a pending leave application.
func (c *Client) CancelLeave(ctx context.Context, leaveID string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/leave/cancel/"+leaveID, nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllLeaves lists every employee's leaves for review, optionally
// filtered by status.
func (c *Client) AllLeaves(ctx context.Context, status string, limit int) (*LeaveListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", status)
	}

	var out LeaveListResponse
	if err := c.do(ctx, http.MethodGet, "/leave/admin/all", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingLeaves lists leaves awaiting review.
func (c *Client) PendingLeaves(ctx context.Context) (*LeaveListResponse, error) {
	var out LeaveListResponse
	if err := c.do(ctx, http.MethodGet, "/leave/admin/pending", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewLeave approves or rejects a leave application. action is
// "approve" or "reject".
func (c *Client) ReviewLeave(ctx context.Context, leaveID, action, comment string) (*MessageResponse, error) {
	body := map[string]string{
		"leave_id": leaveID,
		"action":   action,
		"comment":  comment,
	}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/leave/admin/review", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
