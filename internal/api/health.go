package api

import (
	"context"
	"net/http"
)

// Health checks backend liveness. No token is attached.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out, requestOptions{noAuth: true}); err != nil {
		return nil, err
	}
	return &out, nil
}
