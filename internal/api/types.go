package api

// User is the identity object returned by the auth endpoints.
// Employees carry an employee_id, managers a manager_id.
type User struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	EmployeeID     string `json:"employee_id,omitempty"`
	ManagerID      string `json:"manager_id,omitempty"`
	Role           string `json:"role"`
	Department     string `json:"department,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// LoginResponse is returned by login, manager login, and OTP
// verification. The server-declared role inside User is authoritative.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// MessageResponse wraps endpoints that only return a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// Profile is the employee profile with editable personal fields.
type Profile struct {
	User
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Documents []Document `json:"documents,omitempty"`
}

// Document is an uploaded employee document.
type Document struct {
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
	UploadedAt   string `json:"uploaded_at,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Salary is the employee's salary structure.
type Salary struct {
	Basic      int `json:"basic"`
	HRA        int `json:"hra"`
	Allowances int `json:"allowances"`
	Deductions int `json:"deductions"`
	Net        int `json:"net"`
}

// AttendanceDay is one day's attendance record. Check-in/out are
// HH:MM strings or empty when the day has no punch.
type AttendanceDay struct {
	Date       string  `json:"date"`
	Day        string  `json:"day,omitempty"`
	CheckIn    string  `json:"check_in,omitempty"`
	CheckOut   string  `json:"check_out,omitempty"`
	TotalHours float64 `json:"total_hours,omitempty"`
	Status     string  `json:"status,omitempty"`
	Mode       string  `json:"mode,omitempty"`
	EmployeeID string  `json:"employee_id,omitempty"`
	Name       string  `json:"name,omitempty"`
}

// WeeklyAttendance is the fixed Sunday-to-Saturday attendance window.
type WeeklyAttendance struct {
	WeekStart  string          `json:"week_start"`
	WeekEnd    string          `json:"week_end"`
	Attendance []AttendanceDay `json:"attendance"`
	TotalHours float64         `json:"total_hours"`
}

// CheckResponse is returned by check-in and check-out.
type CheckResponse struct {
	Message    string         `json:"message"`
	Attendance *AttendanceDay `json:"attendance,omitempty"`
}

// Manager is a manager an employee can submit timesheets to.
type Manager struct {
	ManagerID string `json:"manager_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
}

// TimesheetEligibility reports whether a timesheet can be submitted now.
type TimesheetEligibility struct {
	CanSubmit bool   `json:"can_submit"`
	Reason    string `json:"reason,omitempty"`
}

// Timesheet is a weekly attendance aggregation under manager review.
type Timesheet struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	ManagerID    string          `json:"manager_id,omitempty"`
	WeekStart    string          `json:"week_start"`
	WeekEnd      string          `json:"week_end,omitempty"`
	Status       string          `json:"status"`
	Comments     string          `json:"comments,omitempty"`
	TotalHours   float64         `json:"total_hours,omitempty"`
	Attendance   []AttendanceDay `json:"attendance,omitempty"`
}

// TimesheetStatusResponse wraps the current week's timesheet, if any.
type TimesheetStatusResponse struct {
	Submitted bool       `json:"submitted"`
	Timesheet *Timesheet `json:"timesheet,omitempty"`
	WeekStart string     `json:"week_start,omitempty"`
}

// Leave is one leave application.
type Leave struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	Comment      string `json:"comment,omitempty"`
	AppliedAt    string `json:"applied_at,omitempty"`
}

// LeaveListResponse wraps a list of leaves.
type LeaveListResponse struct {
	Leaves []Leave `json:"leaves"`
}

// Employee is the admin view of an employee record.
type Employee struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Department     string  `json:"department,omitempty"`
	JobTitle       string  `json:"job_title,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	IsVerified     bool    `json:"is_verified,omitempty"`
	Salary         *Salary `json:"salary,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}

// EmployeeListResponse wraps the admin employee directory.
type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
}

// AttendanceListResponse wraps admin attendance queries.
type AttendanceListResponse struct {
	Attendance []AttendanceDay `json:"attendance"`
}

// DashboardStats is the admin/manager dashboard summary.
type DashboardStats struct {
	TotalEmployees    int `json:"total_employees"`
	PresentToday      int `json:"present_today"`
	AbsentToday       int `json:"absent_today"`
	PendingLeaves     int `json:"pending_leaves"`
	PendingTimesheets int `json:"pending_timesheets"`
}

// DepartmentsResponse wraps the distinct department names.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

// DocumentRequest is an admin-initiated request for a document.
type DocumentRequest struct {
	RequestID    string `json:"request_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	DocumentType string `json:"document_type"`
	Description  string `json:"description,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	Status       string `json:"status"`
	Comments     string `json:"comments,omitempty"`
	FileName     string `json:"file_name,omitempty"`
}

// DocumentRequestListResponse wraps document request queries.
type DocumentRequestListResponse struct {
	Requests []DocumentRequest `json:"requests"`
}

// DocumentTypesResponse wraps the allowed document types.
type DocumentTypesResponse struct {
	Types []string `json:"types"`
}

// Payslip is a generated monthly salary record.
type Payslip struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Name        string `json:"name,omitempty"`
	MonthYear   string `json:"month_year"`
	Basic       int    `json:"basic"`
	HRA         int    `json:"hra"`
	Allowances  int    `json:"allowances"`
	Deductions  int    `json:"deductions"`
	GrossSalary int    `json:"gross_salary"`
	NetSalary   int    `json:"net_salary"`
	Status      string `json:"status,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// PayslipListResponse wraps payslip queries.
type PayslipListResponse struct {
	Payslips []Payslip `json:"payslips"`
}

// ChatResponse is the AI assistant's reply.
type ChatResponse struct {
	Response string         `json:"response"`
	Usage    map[string]any `json:"usage,omitempty"`
}

// InsightsResponse is a generated AI insight report.
type InsightsResponse struct {
	Insights    string         `json:"insights"`
	DataSummary map[string]any `json:"data_summary,omitempty"`
}

// HealthResponse is the backend liveness report.
type HealthResponse struct {
	Status string `json:"status"`
}
