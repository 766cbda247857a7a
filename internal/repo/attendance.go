package repo

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net"
	"time"

	"github.com/lib/pq"

	"github.com/yorul/attendance-management/internal/models"
)

// ErrorClass buckets punch write failures for the logging collaborator.
// The handler decides what the user sees; the class decides how loudly we log.
type ErrorClass string

const (
	ClassTransient  ErrorClass = "transient"
	ClassUnexpected ErrorClass = "unexpected"
)

// Classify sorts a database error into transient (connection loss, shutdown,
// serialization conflicts — worth retrying the punch) or unexpected.
func Classify(err error) ErrorClass {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, sql.ErrConnDone) {
		return ClassTransient
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "40", "57": // connection, transaction rollback, operator intervention
			return ClassTransient
		}
	}
	return ClassUnexpected
}

// ==========================
// AttendanceRepo
// ==========================
type AttendanceRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewAttendanceRepo(db *sql.DB) *AttendanceRepo {
	return &AttendanceRepo{DB: db}
}

// ==========================
// Clock In
// ==========================
// ClockIn inserts a new open punch. Nothing stops a user from clocking in
// again while a punch is already open; a second open row is created and
// only the most recent one will ever be closed. Known gap, kept as-is.
func (r *AttendanceRepo) ClockIn(ctx context.Context, userID int, at time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO attendance (user_id, check_in_time) VALUES ($1, $2)`,
		userID, at,
	)
	return err
}

// ==========================
// Clock Out
// ==========================
// ClockOut stamps the check-out time on the user's most recent punch by
// check-in time, whether or not it already has one. Re-clocking-out
// overwrites silently. Returns the number of rows updated (0 when the user
// has never clocked in).
func (r *AttendanceRepo) ClockOut(ctx context.Context, userID int, at time.Time) (int64, error) {
	query := `
		UPDATE attendance
		SET check_out_time = $1
		WHERE id = (
			SELECT id FROM attendance
			WHERE user_id = $2
			ORDER BY check_in_time DESC
			LIMIT 1
		)
	`

	res, err := r.DB.ExecContext(ctx, query, at, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// ==========================
// Latest For User
// ==========================
// LatestForUser returns the user's most recent punch by check-in time, the
// same row ClockOut would target, or nil when the user has never punched.
func (r *AttendanceRepo) LatestForUser(ctx context.Context, userID int) (*models.Punch, error) {
	query := `
		SELECT id, user_id, check_in_time, check_out_time
		FROM attendance
		WHERE user_id = $1
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	punch := &models.Punch{}
	var out sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&punch.ID, &punch.UserID, &punch.CheckInTime, &out)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out.Valid {
		t := out.Time
		punch.CheckOutTime = &t
	}

	return punch, nil
}

// ==========================
// List All (admin report)
// ==========================
func (r *AttendanceRepo) ListAll(ctx context.Context) ([]models.AttendanceEntry, error) {
	query := `
		SELECT attendance.user_id, accounts.username, attendance.check_in_time, attendance.check_out_time
		FROM attendance
		JOIN accounts ON attendance.user_id = accounts.id
		ORDER BY attendance.check_in_time DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AttendanceEntry
	for rows.Next() {
		var e models.AttendanceEntry
		var out sql.NullTime
		if err := rows.Scan(&e.UserID, &e.Username, &e.CheckInTime, &out); err != nil {
			return nil, err
		}
		if out.Valid {
			t := out.Time
			e.CheckOutTime = &t
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ==========================
// List Open (summary job)
// ==========================
func (r *AttendanceRepo) ListOpen(ctx context.Context) ([]models.AttendanceEntry, error) {
	query := `
		SELECT attendance.user_id, accounts.username, attendance.check_in_time
		FROM attendance
		JOIN accounts ON attendance.user_id = accounts.id
		WHERE attendance.check_out_time IS NULL
		ORDER BY attendance.check_in_time DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AttendanceEntry
	for rows.Next() {
		var e models.AttendanceEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.CheckInTime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
