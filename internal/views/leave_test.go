package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/internal/api"
)

func TestLeaveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three day span", "2024-01-10", "2024-01-12", 3},
		{"single day", "2024-01-10", "2024-01-10", 1},
		{"across month boundary", "2024-01-30", "2024-02-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"full week", "2024-01-07", "2024-01-13", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeaveDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeaveDaysBadInput(t *testing.T) {
	_, err := LeaveDays("10/01/2024", "2024-01-12")
	assert.Error(t, err)

	_, err = LeaveDays("2024-01-10", "")
	assert.Error(t, err)
}

func approvedLeaves(n int) []api.Leave {
	leaves := make([]api.Leave, n)
	for i := range leaves {
		leaves[i] = api.Leave{Status: LeaveStatusApproved}
	}
	return leaves
}

func TestLeaveBalance(t *testing.T) {
	tests := []struct {
		name      string
		leaves    []api.Leave
		allowance int
		want      int
	}{
		{"five approved of twelve", approvedLeaves(5), 12, 7},
		{"nothing taken", nil, 12, 12},
		{"over allowance clamps to zero", approvedLeaves(13), 12, 0},
		{"exactly exhausted", approvedLeaves(12), 12, 0},
		{"custom allowance", approvedLeaves(3), 20, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeaveBalance(tt.leaves, tt.allowance))
		})
	}
}

func TestLeaveBalanceIgnoresPendingAndRejected(t *testing.T) {
	leaves := []api.Leave{
		{Status: "Approved"},
		{Status: "Pending"},
		{Status: "Rejected"},
		{Status: "Approved"},
	}

	assert.Equal(t, 10, LeaveBalance(leaves, DefaultLeaveAllowance))
}
