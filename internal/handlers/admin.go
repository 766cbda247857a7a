package handlers

import (
	"log/slog"
	"net/http"

	"github.com/yorul/attendance-management/internal/clock"
	"github.com/yorul/attendance-management/internal/repo"
)

// ==========================
// Admin Handler
// ==========================
type AdminHandler struct {
	Punches *repo.AttendanceRepo
}

// reportRow is a pre-formatted line of the admin report.
type reportRow struct {
	UserID   int
	Username string
	CheckIn  string
	CheckOut string
}

// ==========================
// Attendance Report
// ==========================
// Report lists every punch from every user, newest check-in first. Route
// must sit behind RequireSession + RequireAdmin.
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Punches.ListAll(r.Context())
	if err != nil {
		slog.Error("admin report: list attendance failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rows := make([]reportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, reportRow{
			UserID:   e.UserID,
			Username: e.Username,
			CheckIn:  clock.Format(e.CheckInTime),
			CheckOut: clock.FormatPtr(e.CheckOutTime),
		})
	}

	renderTemplate(w, "admin.html", map[string]interface{}{"Records": rows})
}
