package handlers

import (
	"log/slog"
	"net/http"

	"github.com/yorul/attendance-management/internal/auth"
	"github.com/yorul/attendance-management/internal/clock"
	"github.com/yorul/attendance-management/internal/metrics"
	"github.com/yorul/attendance-management/internal/models"
	"github.com/yorul/attendance-management/internal/repo"
)

// ==========================
// Attendance Handler
// ==========================
type AttendanceHandler struct {
	Punches *repo.AttendanceRepo
}

// ==========================
// Home
// ==========================
func (h *AttendanceHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, auth.LoginPath, http.StatusFound)
		return
	}

	// Show whether the user is currently clocked in. A lookup failure only
	// hides the status line; the punch buttons must stay usable.
	clockedIn := false
	latest, err := h.Punches.LatestForUser(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("home: latest punch lookup failed", "user_id", sess.UserID, "error", err)
	} else if latest != nil && latest.Open() {
		clockedIn = true
	}

	renderTemplate(w, "home.html", map[string]interface{}{
		"Username":  sess.Username,
		"IsAdmin":   sess.IsAdmin(),
		"ClockedIn": clockedIn,
	})
}

// ==========================
// Record Punch
// ==========================
// Record handles both punch buttons. Database failures are logged with an
// error class and hidden from the user: punching happens at the office door
// and a raw error page helps nobody there. The user is redirected home
// either way.
func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, auth.LoginPath, http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	action, err := models.ParsePunchAction(r.PostFormValue("action"))
	if err != nil {
		slog.Warn("record attendance: unrecognized action",
			"user_id", sess.UserID,
			"action", r.PostFormValue("action"))
		metrics.RecordPunch("unknown", "unrecognized")
		http.Redirect(w, r, "/attendance/home", http.StatusFound)
		return
	}

	now := clock.NowJST()

	switch action {
	case models.ActionClockIn:
		err = h.Punches.ClockIn(r.Context(), sess.UserID, now)
	case models.ActionClockOut:
		var n int64
		n, err = h.Punches.ClockOut(r.Context(), sess.UserID, now)
		if err == nil && n == 0 {
			slog.Warn("record attendance: clock-out with no punch to close",
				"user_id", sess.UserID)
		}
	}

	if err != nil {
		class := repo.Classify(err)
		slog.Error("record attendance: punch failed",
			"user_id", sess.UserID,
			"action", action.String(),
			"class", string(class),
			"error", err)
		metrics.RecordPunch(action.String(), string(class)+"_error")
	} else {
		metrics.RecordPunch(action.String(), "ok")
	}

	http.Redirect(w, r, "/attendance/home", http.StatusFound)
}
