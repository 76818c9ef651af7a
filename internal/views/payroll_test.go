package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayflowhq/dayflow/internal/api"
)

func TestNetSalary(t *testing.T) {
	tests := []struct {
		name   string
		salary api.Salary
		want   int
	}{
		{
			name:   "typical payslip",
			salary: api.Salary{Basic: 30000, HRA: 10000, Allowances: 5000, Deductions: 2000},
			want:   43000,
		},
		{
			name:   "zero salary",
			salary: api.Salary{},
			want:   0,
		},
		{
			name:   "no deductions",
			salary: api.Salary{Basic: 50000, HRA: 20000, Allowances: 10000},
			want:   80000,
		},
		{
			name:   "server net field is ignored",
			salary: api.Salary{Basic: 30000, HRA: 10000, Allowances: 5000, Deductions: 2000, Net: 99999},
			want:   43000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NetSalary(tt.salary))
		})
	}
}
