package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/yorul/attendance-management/internal/clock"
	"github.com/yorul/attendance-management/internal/metrics"
	"github.com/yorul/attendance-management/internal/repo"
)

// Run starts the open-punch summary job on the given cron expression
// (e.g. "0 18 * * *" for 18:00 daily). The job only reads: it logs who is
// still clocked in and feeds the gauge. It never closes punches.
// Returns the started cron so the caller can Stop it on shutdown.
func Run(cronExpr string, punches *repo.AttendanceRepo) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(clock.JST))

	_, err := c.AddFunc(cronExpr, func() { summarize(punches) })
	if err != nil {
		return nil, err
	}

	c.Start()
	slog.Info("scheduler: open-punch summary job started", "cron", cronExpr)
	return c, nil
}

func summarize(punches *repo.AttendanceRepo) {
	entries, err := punches.ListOpen(context.Background())
	if err != nil {
		slog.Error("scheduler: list open punches failed", "error", err)
		return
	}

	metrics.SetOpenPunches(len(entries))

	if len(entries) == 0 {
		slog.Info("scheduler: no open punches")
		return
	}
	for _, e := range entries {
		slog.Info("scheduler: open punch",
			"user_id", e.UserID,
			"username", e.Username,
			"check_in_time", clock.Format(e.CheckInTime))
	}
	slog.Info("scheduler: open punch summary", "open", len(entries))
}
