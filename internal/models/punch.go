package models

import (
	"fmt"
	"time"
)

// Form labels posted by the home page buttons. The UI is Japanese and the
// labels double as the wire tokens, matching the data already in production.
const (
	LabelClockIn  = "出勤記録"
	LabelClockOut = "退勤記録"
)

// PunchAction is what the user asked for on /record-attendance.
type PunchAction int

const (
	ActionClockIn PunchAction = iota
	ActionClockOut
)

func (a PunchAction) String() string {
	switch a {
	case ActionClockIn:
		return "clock_in"
	case ActionClockOut:
		return "clock_out"
	}
	return "unknown"
}

// ParsePunchAction decodes the posted action label. Unrecognized values are an
// error rather than a silent no-op so the handler can log them.
func ParsePunchAction(label string) (PunchAction, error) {
	switch label {
	case LabelClockIn:
		return ActionClockIn, nil
	case LabelClockOut:
		return ActionClockOut, nil
	}
	return 0, fmt.Errorf("unrecognized attendance action %q", label)
}

// Punch is one attendance row. CheckOutTime is nil while the punch is open.
type Punch struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

// Open reports whether the punch has not been clocked out yet.
func (p Punch) Open() bool {
	return p.CheckOutTime == nil
}

// AttendanceEntry is one row of the admin report: a punch joined to its
// account's username.
type AttendanceEntry struct {
	UserID       int        `json:"user_id"`
	Username     string     `json:"username"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}
