package api

import (
	"context"
	"net/http"
)

// Chat sends a message to the HR assistant and returns its reply.
// Response generation is entirely server-side.
func (c *Client) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	body := map[string]string{"message": message}
	var out ChatResponse
	if err := c.do(ctx, http.MethodPost, "/ai/chat", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insights generates an insight report. insightType is one of
// "attendance", "leave", "payroll", or "general".
func (c *Client) Insights(ctx context.Context, insightType string) (*InsightsResponse, error) {
	body := map[string]string{"type": insightType}
	var out InsightsResponse
	if err := c.do(ctx, http.MethodPost, "/ai/insights", body, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuickInsights fetches the short dashboard insight bullets.
func (c *Client) QuickInsights(ctx context.Context) (*InsightsResponse, error) {
	var out InsightsResponse
	if err := c.do(ctx, http.MethodGet, "/ai/quick-insights", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
