package domain

import "time"

// ============================================================
// Identity & Roles
// ============================================================

// Role values as persisted and carried in tokens
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity represents an authenticated user's session profile.
// Issued at login, immutable afterwards.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// ============================================================
// Attendance
// ============================================================

// AttendanceRecord is a single day's attendance for one employee.
// At most one record exists per (EmployeeID, AttendanceDate); the record
// is created by a check-in and closed exactly once by a check-out.
type AttendanceRecord struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	EmployeeName   string     `json:"employeeName"`
	CheckInTime    time.Time  `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	AttendanceDate string     `json:"attendanceDate"`
}

// IsOpen reports whether the day is still waiting for a check-out
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckOutTime == nil
}

// AttendanceStatus is the derived per-day state for one identity.
// Never persisted; recomputed from the record collection on demand.
type AttendanceStatus struct {
	CheckedIn  bool `json:"checkedIn"`
	CheckedOut bool `json:"checkedOut"`
}
