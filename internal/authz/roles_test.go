package authz

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"employee", RoleEmployee, false},
		{"manager", RoleManager, false},
		{"admin", RoleAdmin, false},
		{"  Admin ", RoleAdmin, false},
		{"EMPLOYEE", RoleEmployee, false},
		{"hr", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSatisfiesMatrix checks the full capability table: admin satisfies
// everything, manager additionally satisfies employee, employee only
// satisfies itself.
func TestSatisfiesMatrix(t *testing.T) {
	tests := []struct {
		have Role
		need Role
		want bool
	}{
		{RoleEmployee, RoleEmployee, true},
		{RoleEmployee, RoleManager, false},
		{RoleEmployee, RoleAdmin, false},
		{RoleManager, RoleEmployee, true},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleAdmin, false},
		{RoleAdmin, RoleEmployee, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.have)+"_"+string(tt.need), func(t *testing.T) {
			if got := Satisfies(tt.have, tt.need); got != tt.want {
				t.Errorf("Satisfies(%s, %s) = %v, want %v", tt.have, tt.need, got, tt.want)
			}
		})
	}
}

func TestSatisfiesEmptyRequirement(t *testing.T) {
	for _, have := range []Role{RoleEmployee, RoleManager, RoleAdmin} {
		if !Satisfies(have, "") {
			t.Errorf("Satisfies(%s, \"\") should allow any authenticated role", have)
		}
	}
}

func TestDefaultRoute(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleEmployee, "/employee/dashboard"},
		{RoleManager, "/manager/dashboard"},
		{RoleAdmin, "/admin/dashboard"},
		{Role("hr"), "/admin/dashboard"}, // anything else lands on admin
	}

	for _, tt := range tests {
		if got := DefaultRoute(tt.role); got != tt.want {
			t.Errorf("DefaultRoute(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

// TestDefaultRoutePassesOwnGuard verifies the no-redirect-loop
// invariant: each role's landing route must satisfy the guard for that
// role.
func TestDefaultRoutePassesOwnGuard(t *testing.T) {
	for _, role := range []Role{RoleEmployee, RoleManager, RoleAdmin} {
		need := RequiredRole(DefaultRoute(role))
		if !Satisfies(role, need) {
			t.Errorf("role %s is redirected to %s which it cannot access", role, DefaultRoute(role))
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleManager.Valid() {
		t.Error("manager should be a valid role")
	}
	if Role("intern").Valid() {
		t.Error("intern should not be a valid role")
	}
}
