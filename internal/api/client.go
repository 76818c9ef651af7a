// Package api is the single choke point for all calls to the Dayflow
// backend. Every domain operation is a thin named method over the same
// request path: one base URL, JSON bodies, a bearer token unless the
// endpoint opts out, and the uniform error envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/log"
)

// DefaultTimeout bounds a single request round trip.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token. An empty string means
// no token is attached. The session service is the usual implementation.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token. Useful in tests.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token() string { return string(s) }

// Client is the Dayflow backend API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger

	// onAuthExpired is invoked when the backend rejects a call with
	// 401 and code "token_expired". Transport parsing stays decoupled
	// from session policy: the session service subscribes and decides
	// what clearing and navigation mean.
	onAuthExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets the bearer token source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the client logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new Dayflow API client for the given base URL
// (including the /api prefix).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		tokens: StaticToken(""),
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnAuthExpired registers the callback invoked on a token-expired
// rejection. Only one callback is held; later calls replace it.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// errorEnvelope is the uniform error shape of every backend response.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// tokenExpiredCode is the envelope code that forces a logout.
const tokenExpiredCode = "token_expired"

// requestOptions tweak a single call.
type requestOptions struct {
	// noAuth skips the Authorization header. Used only by the
	// login/signup/otp/health endpoints.
	noAuth bool
	// query is appended to the endpoint path.
	query url.Values
}

// do performs a JSON request and decodes the response into out (which
// may be nil). Exactly one attempt; callers own any retry policy.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any, opts requestOptions) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return dferrors.Wrap(dferrors.ErrCodeAPIRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, opts.query), reqBody)
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeAPIRequest, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req, opts.noAuth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "endpoint", endpoint, "error", err)
		return dferrors.NewUnreachableError(err)
	}

	return c.parseResponse(resp, out)
}

// upload performs a multipart form upload with the same bearer-token
// and error-envelope contract as the JSON path.
func (c *Client) upload(ctx context.Context, endpoint string, fields map[string]string, fileField, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return dferrors.Wrap(dferrors.ErrCodeAPIUpload, "failed to build form", err)
		}
	}

	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeAPIUpload, "failed to build form file", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return dferrors.Wrap(dferrors.ErrCodeAPIUpload, "failed to read upload content", err)
	}
	if err := w.Close(); err != nil {
		return dferrors.Wrap(dferrors.ErrCodeAPIUpload, "failed to finalize form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(endpoint, nil), &buf)
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeAPIRequest, "failed to create request", err)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setCommonHeaders(req, false)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dferrors.NewUnreachableError(err)
	}

	return c.parseResponse(resp, out)
}

func (c *Client) buildURL(endpoint string, query url.Values) string {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) setCommonHeaders(req *http.Request, noAuth bool) {
	req.Header.Set("X-Request-ID", uuid.NewString())

	if noAuth {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// parseResponse decodes the response body into out, mapping non-2xx
// statuses through the error envelope. A 401 with code "token_expired"
// additionally fires the auth-expired callback; the call still fails.
func (c *Client) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return dferrors.New(dferrors.ErrCodeAPIServer,
				fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, string(body)))
		}

		if resp.StatusCode == http.StatusUnauthorized && env.Code == tokenExpiredCode {
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
			return dferrors.NewTokenExpiredError()
		}

		return dferrors.NewServerError(resp.StatusCode, env.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return dferrors.Wrap(dferrors.ErrCodeAPIResponse, "failed to decode response", err)
		}
	}

	return nil
}
