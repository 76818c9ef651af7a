package views

import (
	"time"

	"github.com/dayflowhq/dayflow/internal/api"
)

// DefaultLeaveAllowance is the annual leave allowance used when none is
// configured.
const DefaultLeaveAllowance = 12

// LeaveStatusApproved is the backend's approved-leave status value.
const LeaveStatusApproved = "Approved"

// LeaveDays returns the inclusive day count of a leave span: a leave
// from the 10th to the 12th is three days. Dates are YYYY-MM-DD.
func LeaveDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// LeaveBalance returns the remaining allowance: the configured annual
// allowance minus the number of approved leaves, clamped at zero.
// Pending and rejected leaves do not consume allowance.
func LeaveBalance(leaves []api.Leave, allowance int) int {
	approved := 0
	for _, l := range leaves {
		if l.Status == LeaveStatusApproved {
			approved++
		}
	}
	balance := allowance - approved
	if balance < 0 {
		return 0
	}
	return balance
}
