package api

import (
	"context"
	"net/http"
)

// SignupRequest is the registration payload. Role may be "employee" or
// "admin"; managers are provisioned out of band.
type SignupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}

// Signup registers a new account. No session is established; the user
// must verify the emailed OTP first.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out, requestOptions{noAuth: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP confirms the emailed code. Success returns a full login
// response: token plus server-declared identity and role.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "otp": otp}
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/verify-otp", body, &out, requestOptions{noAuth: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendOTP requests a fresh verification code.
func (c *Client) ResendOTP(ctx context.Context, email string) (*MessageResponse, error) {
	body := map[string]string{"email": email}
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/auth/resend-otp", body, &out, requestOptions{noAuth: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates an employee or admin account.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", body, &out, requestOptions{noAuth: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ManagerLogin authenticates against the separate manager directory.
func (c *Client) ManagerLogin(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/manager/login", body, &out, requestOptions{noAuth: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the identity behind the current token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out, requestOptions{}); err != nil {
		return nil, err
	}
	return &out, nil
}
