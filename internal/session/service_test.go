package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

type fakeAuthAPI struct {
	loginResp        *api.LoginResponse
	loginErr         error
	managerResp      *api.LoginResponse
	managerErr       error
	signupResp       *api.MessageResponse
	signupErr        error
	verifyResp       *api.LoginResponse
	verifyErr        error
	resendResp       *api.MessageResponse
	resendErr        error
	loginCalls       int
	managerCalls     int
	lastSignup       api.SignupRequest
	lastLoginEmail   string
	lastVerifyEmail  string
	lastVerifyOTP    string
	lastResendEmail  string
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	f.loginCalls++
	f.lastLoginEmail = email
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) ManagerLogin(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	f.managerCalls++
	return f.managerResp, f.managerErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req api.SignupRequest) (*api.MessageResponse, error) {
	f.lastSignup = req
	return f.signupResp, f.signupErr
}

func (f *fakeAuthAPI) VerifyOTP(ctx context.Context, email, otp string) (*api.LoginResponse, error) {
	f.lastVerifyEmail = email
	f.lastVerifyOTP = otp
	return f.verifyResp, f.verifyErr
}

func (f *fakeAuthAPI) ResendOTP(ctx context.Context, email string) (*api.MessageResponse, error) {
	f.lastResendEmail = email
	return f.resendResp, f.resendErr
}

type recordingNavigator struct {
	routes []string
}

func (r *recordingNavigator) Navigate(route string) {
	r.routes = append(r.routes, route)
}

func employeeLoginResponse() *api.LoginResponse {
	return &api.LoginResponse{
		Message: "Login successful",
		Token:   "tok-123",
		User: api.User{
			Email:      "ada@dayflow.io",
			Name:       "Ada Lovelace",
			EmployeeID: "EMP-001",
			Role:       "employee",
			Department: "Engineering",
		},
	}
}

func newTestService(t *testing.T, fake *fakeAuthAPI) (*Service, *MemoryStorage, *recordingNavigator) {
	t.Helper()
	storage := NewMemoryStorage()
	nav := &recordingNavigator{}
	return NewService(fake, storage, nav), storage, nav
}

func TestLoginEstablishesSession(t *testing.T) {
	fake := &fakeAuthAPI{loginResp: employeeLoginResponse()}
	svc, storage, nav := newTestService(t, fake)

	sess, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, authz.RoleEmployee, sess.Role)
	assert.Equal(t, "tok-123", svc.Token())
	assert.True(t, svc.Authenticated())
	assert.Equal(t, []string{authz.EmployeeDashboardRoute}, nav.routes)

	token, ok := storage.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	role, ok := storage.Get(KeyRole)
	require.True(t, ok)
	assert.Equal(t, "employee", role)
	rawUser, ok := storage.Get(KeyUser)
	require.True(t, ok)

	var user api.User
	require.NoError(t, json.Unmarshal([]byte(rawUser), &user))
	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestLoginManagerRoleUsesManagerEndpoint(t *testing.T) {
	resp := employeeLoginResponse()
	resp.User.Role = "manager"
	fake := &fakeAuthAPI{managerResp: resp}
	svc, _, nav := newTestService(t, fake)

	sess, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleManager)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.managerCalls)
	assert.Equal(t, 0, fake.loginCalls)
	assert.Equal(t, authz.RoleManager, sess.Role)
	assert.Equal(t, []string{authz.ManagerDashboardRoute}, nav.routes)
}

func TestLoginServerRoleWins(t *testing.T) {
	// Requested employee, server says admin. The server's word is final.
	resp := employeeLoginResponse()
	resp.User.Role = "admin"
	fake := &fakeAuthAPI{loginResp: resp}
	svc, _, nav := newTestService(t, fake)

	sess, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, authz.RoleAdmin, sess.Role)
	assert.Equal(t, []string{authz.AdminDashboardRoute}, nav.routes)
}

func TestLoginFailureMutatesNothing(t *testing.T) {
	fake := &fakeAuthAPI{loginErr: dferrors.NewInvalidCredentialsError("Invalid credentials")}
	svc, storage, nav := newTestService(t, fake)

	_, err := svc.Login(context.Background(), "ada@dayflow.io", "wrong", authz.RoleEmployee)
	require.Error(t, err)

	assert.False(t, svc.Authenticated())
	assert.Empty(t, nav.routes)
	_, ok := storage.Get(KeyToken)
	assert.False(t, ok)
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	fake := &fakeAuthAPI{}
	svc, _, _ := newTestService(t, fake)

	_, err := svc.Login(context.Background(), "", "secret", authz.RoleEmployee)
	require.Error(t, err)
	var dfErr *dferrors.DayflowError
	require.ErrorAs(t, err, &dfErr)
	assert.Equal(t, dferrors.ErrCodeInputRequired, dfErr.Code)

	_, err = svc.Login(context.Background(), "ada@dayflow.io", "", authz.RoleEmployee)
	require.Error(t, err)
	assert.Equal(t, 0, fake.loginCalls)
}

func TestInitRestoresCompleteTrio(t *testing.T) {
	storage := NewMemoryStorage()
	userJSON, _ := json.Marshal(api.User{Email: "ada@dayflow.io", Role: "manager"})
	require.NoError(t, storage.Set(KeyToken, "tok-restored"))
	require.NoError(t, storage.Set(KeyUser, string(userJSON)))
	require.NoError(t, storage.Set(KeyRole, "manager"))

	svc := NewService(&fakeAuthAPI{}, storage, &recordingNavigator{})
	svc.Init()

	require.True(t, svc.Authenticated())
	assert.Equal(t, "tok-restored", svc.Token())
	assert.Equal(t, authz.RoleManager, svc.Current().Role)
}

func TestInitIncompleteTrioStartsUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
	}{
		{"nothing persisted", map[string]string{}},
		{"token only", map[string]string{KeyToken: "tok"}},
		{"user and role but no token", map[string]string{
			KeyUser: `{"email":"ada@dayflow.io"}`,
			KeyRole: "employee",
		}},
		{"empty token", map[string]string{
			KeyToken: "",
			KeyUser:  `{"email":"ada@dayflow.io"}`,
			KeyRole:  "employee",
		}},
		{"corrupt user payload", map[string]string{
			KeyToken: "tok",
			KeyUser:  "{not json",
			KeyRole:  "employee",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			for k, v := range tt.keys {
				require.NoError(t, storage.Set(k, v))
			}
			svc := NewService(&fakeAuthAPI{}, storage, &recordingNavigator{})
			svc.Init()
			assert.False(t, svc.Authenticated())
			assert.Empty(t, svc.Token())
		})
	}
}

func TestLogoutClearsEverythingAndNavigatesToLogin(t *testing.T) {
	fake := &fakeAuthAPI{loginResp: employeeLoginResponse()}
	svc, storage, nav := newTestService(t, fake)

	_, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)

	svc.Logout()

	assert.False(t, svc.Authenticated())
	assert.Empty(t, svc.Token())
	for _, key := range []string{KeyToken, KeyUser, KeyRole} {
		_, ok := storage.Get(key)
		assert.False(t, ok, key)
	}
	assert.Equal(t, authz.LoginRoute, nav.routes[len(nav.routes)-1])
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, nav := newTestService(t, &fakeAuthAPI{})

	svc.Logout()
	svc.Logout()

	assert.Equal(t, []string{authz.LoginRoute, authz.LoginRoute}, nav.routes)
}

func TestHandleAuthExpiredClearsAndRedirects(t *testing.T) {
	fake := &fakeAuthAPI{loginResp: employeeLoginResponse()}
	svc, storage, nav := newTestService(t, fake)

	_, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)

	svc.HandleAuthExpired()

	assert.False(t, svc.Authenticated())
	_, ok := storage.Get(KeyToken)
	assert.False(t, ok)
	assert.Equal(t, authz.LoginRoute, nav.routes[len(nav.routes)-1])
}

func TestSignupValidation(t *testing.T) {
	fake := &fakeAuthAPI{signupResp: &api.MessageResponse{Message: "OTP sent to your email"}}
	svc, _, _ := newTestService(t, fake)
	ctx := context.Background()

	valid := SignupParams{
		Email:      "ada@dayflow.io",
		Password:   "Sup3rSecret!",
		Name:       "Ada Lovelace",
		EmployeeID: "EMP-001",
	}

	msg, err := svc.Signup(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "OTP sent to your email", msg)
	assert.Equal(t, "employee", fake.lastSignup.Role)

	tests := []struct {
		name   string
		mutate func(*SignupParams)
	}{
		{"missing email", func(p *SignupParams) { p.Email = "" }},
		{"malformed email", func(p *SignupParams) { p.Email = "not-an-email" }},
		{"too short", func(p *SignupParams) { p.Password = "Ab1!" }},
		{"no uppercase", func(p *SignupParams) { p.Password = "sup3rsecret!" }},
		{"no lowercase", func(p *SignupParams) { p.Password = "SUP3RSECRET!" }},
		{"no digit", func(p *SignupParams) { p.Password = "SuperSecret!" }},
		{"no special", func(p *SignupParams) { p.Password = "Sup3rSecret" }},
		{"missing name", func(p *SignupParams) { p.Name = "" }},
		{"missing employee id", func(p *SignupParams) { p.EmployeeID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			_, err := svc.Signup(ctx, params)
			require.Error(t, err)
			var dfErr *dferrors.DayflowError
			require.ErrorAs(t, err, &dfErr)
			assert.Equal(t, dferrors.ErrCodeAuthSignupInvalid, dfErr.Code)
		})
	}
}

func TestSignupAdminFlag(t *testing.T) {
	fake := &fakeAuthAPI{signupResp: &api.MessageResponse{Message: "ok"}}
	svc, _, _ := newTestService(t, fake)

	_, err := svc.Signup(context.Background(), SignupParams{
		Email:      "root@dayflow.io",
		Password:   "Sup3rSecret!",
		Name:       "Root",
		EmployeeID: "EMP-000",
		Admin:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", fake.lastSignup.Role)
}

func TestVerifyOTPEstablishesSession(t *testing.T) {
	fake := &fakeAuthAPI{verifyResp: employeeLoginResponse()}
	svc, _, nav := newTestService(t, fake)

	sess, err := svc.VerifyOTP(context.Background(), "ada@dayflow.io", "482913")
	require.NoError(t, err)

	assert.Equal(t, "ada@dayflow.io", fake.lastVerifyEmail)
	assert.Equal(t, "482913", fake.lastVerifyOTP)
	assert.Equal(t, authz.RoleEmployee, sess.Role)
	assert.True(t, svc.Authenticated())
	assert.Equal(t, []string{authz.EmployeeDashboardRoute}, nav.routes)
}

func TestResendOTP(t *testing.T) {
	fake := &fakeAuthAPI{resendResp: &api.MessageResponse{Message: "OTP resent"}}
	svc, _, _ := newTestService(t, fake)

	msg, err := svc.ResendOTP(context.Background(), "ada@dayflow.io")
	require.NoError(t, err)
	assert.Equal(t, "OTP resent", msg)
	assert.Equal(t, "ada@dayflow.io", fake.lastResendEmail)
	assert.False(t, svc.Authenticated())
}

func TestOnChangeNotifiedOnLoginAndLogout(t *testing.T) {
	fake := &fakeAuthAPI{loginResp: employeeLoginResponse()}
	svc, _, _ := newTestService(t, fake)

	var events []*Session
	svc.OnChange(func(s *Session) { events = append(events, s) })

	_, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)
	svc.Logout()

	require.Len(t, events, 2)
	require.NotNil(t, events[0])
	assert.Equal(t, authz.RoleEmployee, events[0].Role)
	assert.Nil(t, events[1])
}

func TestCurrentReturnsCopy(t *testing.T) {
	fake := &fakeAuthAPI{loginResp: employeeLoginResponse()}
	svc, _, _ := newTestService(t, fake)

	_, err := svc.Login(context.Background(), "ada@dayflow.io", "secret", authz.RoleEmployee)
	require.NoError(t, err)

	first := svc.Current()
	first.Token = "tampered"
	assert.Equal(t, "tok-123", svc.Current().Token)
}
