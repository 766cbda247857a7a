package models

// AdminUsername is the single account allowed to view the attendance report.
// Authorization is by username match, not a role column.
const AdminUsername = "admin"

type Account struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
}
