package views

import "github.com/dayflowhq/dayflow/internal/api"

// NetSalary computes net pay in whole currency units:
// basic + hra + allowances - deductions. The server-sent Net field is
// ignored so local display never drifts from the components shown next
// to it. Inputs are taken as-is; the backend owns their sign.
func NetSalary(s api.Salary) int {
	return s.Basic + s.HRA + s.Allowances - s.Deductions
}
