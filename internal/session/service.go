// Package session owns the client's authentication state: the identity,
// role, and bearer token of the current user, their persistence across
// runs, and the login/signup/OTP/logout lifecycle.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/log"
)

// Session is the authenticated identity held for the current user.
// User and Role are both set or the session is not authenticated;
// a missing token means unauthenticated regardless of the rest.
type Session struct {
	User  api.User
	Role  authz.Role
	Token string
}

// Navigator receives the single redirect a session mutation issues
// (login landing route, logout/expiry back to login).
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

// Navigate calls the wrapped function.
func (f NavigatorFunc) Navigate(route string) { f(route) }

// AuthAPI is the slice of the API client the session service drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	ManagerLogin(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.MessageResponse, error)
	VerifyOTP(ctx context.Context, email, otp string) (*api.LoginResponse, error)
	ResendOTP(ctx context.Context, email string) (*api.MessageResponse, error)
}

// Service is the single owner of session state. All mutation goes
// through it; reads are copies. It implements api.TokenSource so the
// API client always sees the current token.
type Service struct {
	api      AuthAPI
	storage  Storage
	nav      Navigator
	logger   *log.Logger
	validate *validator.Validate

	mu        sync.Mutex
	current   *Session
	listeners []func(*Session)
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a session service. Call Init to rehydrate any
// persisted session before use.
func NewService(authAPI AuthAPI, storage Storage, nav Navigator, opts ...ServiceOption) *Service {
	s := &Service{
		api:      authAPI,
		storage:  storage,
		nav:      nav,
		logger:   log.DefaultLogger(),
		validate: validator.New(),
	}
	_ = s.validate.RegisterValidation("password", validPassword)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// passwordSpecials matches the backend's accepted special characters.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// validPassword enforces the backend's complexity rule: at least one
// uppercase, one lowercase, one digit, and one special character.
// Length is checked separately by the min tag.
func validPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Init restores a persisted session. The session counts as restored
// only when token, user, and role are all present; an incomplete trio
// starts unauthenticated. No server round-trip happens here: token
// validity is discovered lazily on the first API call.
func (s *Service) Init() {
	token, okToken := s.storage.Get(KeyToken)
	rawUser, okUser := s.storage.Get(KeyUser)
	rawRole, okRole := s.storage.Get(KeyRole)

	if !okToken || !okUser || !okRole || token == "" {
		s.logger.Debug("no persisted session")
		return
	}

	var user api.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn("discarding unreadable persisted session", "error", err)
		return
	}

	s.mu.Lock()
	s.current = &Session{
		User:  user,
		Role:  authz.Role(rawRole),
		Token: token,
	}
	s.mu.Unlock()
	s.logger.Debug("session restored", "role", rawRole)
}

// Current returns a copy of the active session, or nil when
// unauthenticated.
func (s *Service) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Authenticated reports whether an active session exists.
func (s *Service) Authenticated() bool {
	return s.Current() != nil
}

// Token implements api.TokenSource.
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// OnChange registers a listener invoked after every session mutation
// with the new session (nil on logout/expiry).
func (s *Service) OnChange(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Login authenticates and establishes a session. The manager role
// dispatches to the separate manager endpoint; every other requested
// role uses the general login. The server-declared role always wins
// over the requested one. On failure nothing is mutated.
func (s *Service) Login(ctx context.Context, email, password string, requestedRole authz.Role) (*Session, error) {
	if email == "" {
		return nil, dferrors.NewInputRequiredError("email")
	}
	if password == "" {
		return nil, dferrors.NewInputRequiredError("password")
	}

	var (
		resp *api.LoginResponse
		err  error
	)
	if requestedRole == authz.RoleManager {
		resp, err = s.api.ManagerLogin(ctx, email, password)
	} else {
		resp, err = s.api.Login(ctx, email, password)
	}
	if err != nil {
		return nil, err
	}

	sess, err := s.establish(resp)
	if err != nil {
		return nil, err
	}

	s.nav.Navigate(authz.DefaultRoute(sess.Role))
	s.logger.Info("logged in", "role", sess.Role.String())
	return sess, nil
}

// SignupParams is the registration input, validated client-side with
// the same rules the backend enforces.
type SignupParams struct {
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8,password"`
	Name       string `validate:"required"`
	EmployeeID string `validate:"required"`
	Admin      bool
}

// Signup registers a new account. No session is established: the
// returned message instructs the user to verify the emailed OTP.
func (s *Service) Signup(ctx context.Context, params SignupParams) (string, error) {
	if err := s.validate.Struct(params); err != nil {
		return "", dferrors.Wrap(dferrors.ErrCodeAuthSignupInvalid, "signup input is invalid", err).
			WithSuggestion("Passwords need 8+ characters with upper, lower, digit, and special characters")
	}

	role := string(authz.RoleEmployee)
	if params.Admin {
		role = string(authz.RoleAdmin)
	}

	resp, err := s.api.Signup(ctx, api.SignupRequest{
		Email:      params.Email,
		Password:   params.Password,
		Name:       params.Name,
		EmployeeID: params.EmployeeID,
		Role:       role,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyOTP confirms the emailed code and establishes a session exactly
// like Login, using the role the server returns.
func (s *Service) VerifyOTP(ctx context.Context, email, otp string) (*Session, error) {
	resp, err := s.api.VerifyOTP(ctx, email, otp)
	if err != nil {
		return nil, err
	}

	sess, err := s.establish(resp)
	if err != nil {
		return nil, err
	}

	s.nav.Navigate(authz.DefaultRoute(sess.Role))
	s.logger.Info("email verified, logged in", "role", sess.Role.String())
	return sess, nil
}

// ResendOTP requests a fresh verification code. No state changes.
func (s *Service) ResendOTP(ctx context.Context, email string) (string, error) {
	resp, err := s.api.ResendOTP(ctx, email)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout clears the persisted trio and the in-memory session, then
// navigates to login. Safe to call when no session exists.
func (s *Service) Logout() {
	s.clear()
	s.nav.Navigate(authz.LoginRoute)
	s.logger.Info("logged out")
}

// HandleAuthExpired is the API client's auth-expired callback: clear
// the session and force navigation to login. The rejected call still
// fails in the caller's hands.
func (s *Service) HandleAuthExpired() {
	s.clear()
	s.nav.Navigate(authz.LoginRoute)
	s.logger.Warn("session expired, logged out")
}

// establish persists and activates the session carried by a successful
// login or OTP verification.
func (s *Service) establish(resp *api.LoginResponse) (*Session, error) {
	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, dferrors.Wrap(dferrors.ErrCodeSessionStorage, "failed to encode user", err)
	}

	// Last write wins; partial writes are repaired by the all-or-nothing
	// check in Init.
	if err := s.storage.Set(KeyToken, resp.Token); err != nil {
		return nil, err
	}
	if err := s.storage.Set(KeyUser, string(userJSON)); err != nil {
		return nil, err
	}
	if err := s.storage.Set(KeyRole, resp.User.Role); err != nil {
		return nil, err
	}

	sess := &Session{
		User:  resp.User,
		Role:  authz.Role(resp.User.Role),
		Token: resp.Token,
	}

	s.mu.Lock()
	s.current = sess
	listeners := append([]func(*Session){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		copied := *sess
		fn(&copied)
	}
	return sess, nil
}

func (s *Service) clear() {
	_ = s.storage.Remove(KeyToken)
	_ = s.storage.Remove(KeyUser)
	_ = s.storage.Remove(KeyRole)

	s.mu.Lock()
	s.current = nil
	listeners := append([]func(*Session){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}
