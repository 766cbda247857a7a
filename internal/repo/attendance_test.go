package repo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/yorul/attendance-management/internal/clock"
)

func TestAttendanceRepo_ClockIn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 3, 1, 9, 0, 0, 0, clock.JST)
	mock.ExpectExec(`INSERT INTO attendance \(user_id, check_in_time\)`).
		WithArgs(1, at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAttendanceRepo(db)
	if err := repo.ClockIn(context.Background(), 1, at); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_ClockOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 3, 1, 18, 0, 0, 0, clock.JST)
	mock.ExpectExec(`UPDATE attendance`).
		WithArgs(at, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAttendanceRepo(db)
	n, err := repo.ClockOut(context.Background(), 1, at)
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if n != 1 {
		t.Errorf("rows updated: got %d, want 1", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_ClockOut_NoPunches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 3, 1, 18, 0, 0, 0, clock.JST)
	mock.ExpectExec(`UPDATE attendance`).
		WithArgs(at, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAttendanceRepo(db)
	n, err := repo.ClockOut(context.Background(), 7, at)
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if n != 0 {
		t.Errorf("rows updated: got %d, want 0", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_LatestForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	in := time.Date(2024, 3, 1, 9, 0, 0, 0, clock.JST)
	mock.ExpectQuery(`SELECT id, user_id, check_in_time, check_out_time`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "check_in_time", "check_out_time"}).
			AddRow(3, 1, in, nil))

	repo := NewAttendanceRepo(db)
	punch, err := repo.LatestForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("LatestForUser: %v", err)
	}
	if punch == nil || punch.ID != 3 || !punch.Open() {
		t.Errorf("unexpected punch: %+v", punch)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_LatestForUser_NoPunches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, check_in_time, check_out_time`).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	repo := NewAttendanceRepo(db)
	punch, err := repo.LatestForUser(context.Background(), 9)
	if err != nil {
		t.Fatalf("LatestForUser: %v", err)
	}
	if punch != nil {
		t.Errorf("expected nil punch, got %+v", punch)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	in1 := time.Date(2024, 3, 2, 9, 0, 0, 0, clock.JST)
	in2 := time.Date(2024, 3, 1, 9, 0, 0, 0, clock.JST)
	out2 := time.Date(2024, 3, 1, 18, 0, 0, 0, clock.JST)

	mock.ExpectQuery(`SELECT attendance.user_id, accounts.username`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "check_in_time", "check_out_time"}).
			AddRow(2, "alice", in1, nil).
			AddRow(1, "bob", in2, out2))

	repo := NewAttendanceRepo(db)
	entries, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].Username != "alice" || entries[0].CheckOutTime != nil {
		t.Errorf("entry 0: %+v", entries[0])
	}
	if entries[1].Username != "bob" || entries[1].CheckOutTime == nil || !entries[1].CheckOutTime.Equal(out2) {
		t.Errorf("entry 1: %+v", entries[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAttendanceRepo_ListOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	in := time.Date(2024, 3, 2, 9, 0, 0, 0, clock.JST)
	mock.ExpectQuery(`WHERE attendance.check_out_time IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "check_in_time"}).
			AddRow(2, "alice", in))

	repo := NewAttendanceRepo(db)
	entries, err := repo.ListOpen(context.Background())
	if err != nil {
		t.Fatalf("ListOpen: %v", err)
	}
	if len(entries) != 1 || entries[0].Username != "alice" {
		t.Errorf("unexpected entries: %+v", entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"conn done", sql.ErrConnDone, ClassTransient},
		{"pq connection failure", &pq.Error{Code: "08006"}, ClassTransient},
		{"pq serialization", &pq.Error{Code: "40001"}, ClassTransient},
		{"pq syntax error", &pq.Error{Code: "42601"}, ClassUnexpected},
		{"plain error", errors.New("boom"), ClassUnexpected},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}
