package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Profile fetches the current employee's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/employee/profile", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile submits edited profile fields. Only the provided keys
// are changed server-side.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPut, "/employee/profile", fields, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadProfilePicture uploads a new profile picture as multipart form
// data.
func (c *Client) UploadProfilePicture(ctx context.Context, filename string, content io.Reader) (*MessageResponse, error) {
	var out MessageResponse
	err := c.upload(ctx, "/employee/profile/picture", nil, "file", filename, content, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument uploads an employee document of the given type.
func (c *Client) UploadDocument(ctx context.Context, documentType, filename string, content io.Reader) (*MessageResponse, error) {
	fields := map[string]string{"document_type": documentType}
	var out MessageResponse
	err := c.upload(ctx, "/employee/documents", fields, "file", filename, content, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes the document at the given index of the
// profile's document list.
func (c *Client) DeleteDocument(ctx context.Context, index int) (*MessageResponse, error) {
	var out MessageResponse
	endpoint := fmt.Sprintf("/employee/documents/%d", index)
	if err := c.do(ctx, http.MethodDelete, endpoint, nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MySalary fetches the current employee's salary structure.
func (c *Client) MySalary(ctx context.Context) (*Salary, error) {
	var out Salary
	if err := c.do(ctx, http.MethodGet, "/employee/salary", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
