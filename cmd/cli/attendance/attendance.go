package attendance

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/yorul/attendance-management/cmd/cli/output"
	"github.com/yorul/attendance-management/cmd/cli/root"
	"github.com/yorul/attendance-management/internal/clock"
	"github.com/yorul/attendance-management/internal/config"
	"github.com/yorul/attendance-management/internal/db"
	"github.com/yorul/attendance-management/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	attendanceCmd := &cobra.Command{
		Use:   "attendance",
		Short: "Inspect attendance records",
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Full punch report, newest check-in first",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return runReport(database)
		},
	}

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Punches still missing a check-out",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return runOpen(database)
		},
	}

	attendanceCmd.AddCommand(reportCmd, openCmd)
	root.GetRoot().AddCommand(attendanceCmd)
}

func connect() (*sql.DB, error) {
	return db.Connect(config.Load())
}

// ==========================
// Full Report
// ==========================
func runReport(database *sql.DB) error {
	entries, err := repo.NewAttendanceRepo(database).ListAll(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.UserID,
			e.Username,
			clock.Format(e.CheckInTime),
			clock.FormatPtr(e.CheckOutTime),
		})
	}
	output.RenderTable([]string{"User ID", "Username", "Check In", "Check Out"}, rows)
	return nil
}

// ==========================
// Open Punches
// ==========================
func runOpen(database *sql.DB) error {
	entries, err := repo.NewAttendanceRepo(database).ListOpen(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{e.UserID, e.Username, clock.Format(e.CheckInTime)})
	}
	output.RenderTable([]string{"User ID", "Username", "Check In"}, rows)
	return nil
}
