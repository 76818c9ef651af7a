package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DocumentTypes lists the allowed document types.
func (c *Client) DocumentTypes(ctx context.Context) ([]string, error) {
	var out DocumentTypesResponse
	if err := c.do(ctx, http.MethodGet, "/documents/types", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return out.Types, nil
}

// PendingDocumentRequests lists the current employee's open document
// requests.
func (c *Client) PendingDocumentRequests(ctx context.Context) (*DocumentRequestListResponse, error) {
	var out DocumentRequestListResponse
	if err := c.do(ctx, http.MethodGet, "/documents/requests/pending", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllDocumentRequests lists the current employee's document requests,
// optionally filtered by status.
func (c *Client) AllDocumentRequests(ctx context.Context, status string) (*DocumentRequestListResponse, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var out DocumentRequestListResponse
	if err := c.do(ctx, http.MethodGet, "/documents/requests/all", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadRequestedDocument fulfills a document request with a multipart
// file upload.
func (c *Client) UploadRequestedDocument(ctx context.Context, requestID, filename string, content io.Reader) (*MessageResponse, error) {
	var out MessageResponse
	err := c.upload(ctx, "/documents/upload/"+requestID, nil, "file", filename, content, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestDocument asks an employee to provide a document by a due date.
func (c *Client) RequestDocument(ctx context.Context, employeeID, documentType, description, dueDate string) (*MessageResponse, error) {
	body := map[string]string{
		"employee_id":   employeeID,
		"document_type": documentType,
		"description":   description,
		"due_date":      dueDate,
	}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/documents/request", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminDocumentRequests queries document requests across employees.
func (c *Client) AdminDocumentRequests(ctx context.Context, status, employeeID string, limit int) (*DocumentRequestListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", status)
	}
	if employeeID != "" {
		query.Set("employee_id", employeeID)
	}

	var out DocumentRequestListResponse
	if err := c.do(ctx, http.MethodGet, "/documents/admin/requests", nil, &out, requestOptions{query: query}); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployeeDocuments lists the documents an employee has uploaded.
func (c *Client) EmployeeDocuments(ctx context.Context, employeeID string) (*DocumentRequestListResponse, error) {
	var out DocumentRequestListResponse
	endpoint := "/documents/admin/employee/" + employeeID
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewDocument approves or rejects an uploaded document. action is
// "approve" or "reject".
func (c *Client) ReviewDocument(ctx context.Context, requestID, action, comments string) (*MessageResponse, error) {
	body := map[string]string{
		"request_id": requestID,
		"action":     action,
		"comments":   comments,
	}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/documents/admin/review", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
