// Package clock handles the fixed-offset timestamps used throughout the app.
// All punches are captured in UTC and rendered in JST (+0900); there is no
// per-user timezone support.
package clock

import "time"

// JST is a fixed +09:00 offset. time.FixedZone avoids a tzdata dependency and
// matches the single-zone behavior the attendance data was recorded with.
var JST = time.FixedZone("JST", 9*60*60)

// Layout renders timestamps as "2006-01-02 15:04:05+0900", the format the
// attendance tables have always stored and displayed.
const Layout = "2006-01-02 15:04:05-0700"

// NowJST returns the current time in JST.
func NowJST() time.Time {
	return time.Now().UTC().In(JST)
}

// Format renders t in JST using Layout.
func Format(t time.Time) string {
	return t.In(JST).Format(Layout)
}

// FormatPtr renders t like Format, or returns empty for nil (open punches).
func FormatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Format(*t)
}
