package cmd

import (
	"strings"
	"testing"
)

func TestReviewAction(t *testing.T) {
	tests := []struct {
		name    string
		approve bool
		reject  bool
		want    string
		wantErr bool
	}{
		{name: "approve", approve: true, want: "approve"},
		{name: "reject", reject: true, want: "reject"},
		{name: "both is ambiguous", approve: true, reject: true, wantErr: true},
		{name: "neither", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reviewAction(tt.approve, tt.reject)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("action = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" {
		t.Error(`orDash("") should be "-"`)
	}
	if orDash("x") != "x" {
		t.Error(`orDash("x") should pass through`)
	}
}

func TestStatusBadgeKeepsUnknownStatuses(t *testing.T) {
	// Unknown statuses pass through unstyled so new backend values
	// never disappear from output.
	if got := statusBadge("Escalated"); got != "Escalated" {
		t.Errorf("statusBadge(Escalated) = %q", got)
	}
	// Known statuses still contain the word after styling.
	if got := statusBadge("Approved"); !strings.Contains(got, "Approved") {
		t.Errorf("statusBadge(Approved) lost its text: %q", got)
	}
}
