package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/yorul/attendance-management/internal/models"
)

// ErrDuplicateUsername is returned by Create when the username is already
// taken. The accounts table has a unique constraint, so two concurrent
// registrations cannot both land even if both passed the existence check.
var ErrDuplicateUsername = errors.New("username already taken")

// ==========================
// AccountRepo
// ==========================
type AccountRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{DB: db}
}

// ==========================
// Create Account
// ==========================
func (r *AccountRepo) Create(ctx context.Context, username, passwordHash, email string) (*models.Account, error) {
	query := `
		INSERT INTO accounts (username, password, email)
		VALUES ($1, $2, $3)
		RETURNING id, username, email
	`

	account := &models.Account{PasswordHash: passwordHash}

	err := r.DB.QueryRowContext(ctx, query, username, passwordHash, email).
		Scan(&account.ID, &account.Username, &account.Email)

	if err != nil {
		if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return account, nil
}

// ==========================
// Exists By Username
// ==========================
func (r *AccountRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)
	`

	var exists bool
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ==========================
// Get By Credentials
// ==========================
// GetByCredentials looks up an account by username and password digest in a
// single query, as the login flow has always done. sql.ErrNoRows means either
// an unknown user or a wrong password; callers must not distinguish.
func (r *AccountRepo) GetByCredentials(ctx context.Context, username, passwordHash string) (*models.Account, error) {
	query := `
		SELECT id, username, email
		FROM accounts
		WHERE username = $1 AND password = $2
	`

	account := &models.Account{}

	err := r.DB.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&account.ID, &account.Username, &account.Email)

	if err != nil {
		return nil, err
	}

	return account, nil
}

// ==========================
// Get By Username
// ==========================
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, email
		FROM accounts
		WHERE username = $1
	`

	account := &models.Account{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&account.ID, &account.Username, &account.Email)

	if err != nil {
		return nil, err
	}

	return account, nil
}

// ==========================
// List Accounts
// ==========================
func (r *AccountRepo) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, username, email FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}
