package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/yorul/attendance-management/internal/auth"
	"github.com/yorul/attendance-management/internal/repo"
)

// User-facing messages. The UI is Japanese end to end.
const (
	msgLoginFailed      = "ユーザー名またはパスワードが間違っています！"
	msgAccountExists    = "アカウントがすでに存在しています！"
	msgInvalidEmail     = "無効なメールアドレスです！"
	msgInvalidUsername  = "ユーザー名は文字と数字のみを含む必要があります！"
	msgPasswordTooShort = "パスワードは8文字以上必要です！"
	msgFillForm         = "フォームを記入してください！"
	msgRegistered       = "登録が成功しました！"
)

var (
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)
	// Only anchored at the front: "abc-def" passes because it starts with an
	// alphanumeric run. Longstanding behavior; tightening it to a full-string
	// match would reject usernames that already registered under the old rule.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+`)
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Accounts *repo.AccountRepo
	Sessions *auth.Sessions

	// Secret is appended to passwords before hashing.
	Secret string
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "index.html", map[string]string{})
}

// Login checks username and password digest in one query. Unknown user and
// wrong password produce the identical message so accounts cannot be
// enumerated from the login form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	hashed := auth.HashPassword(password, h.Secret)
	account, err := h.Accounts.GetByCredentials(r.Context(), username, hashed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderTemplate(w, "index.html", map[string]string{"Msg": msgLoginFailed})
			return
		}
		slog.Error("login: credential lookup failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := h.Sessions.Issue(account.ID, account.Username)
	if err != nil {
		slog.Error("login: issue session failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.Sessions.SetCookie(w, token)
	http.Redirect(w, r, "/attendance/home", http.StatusFound)
}

// ==========================
// Register
// ==========================
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "register.html", map[string]string{})
}

// Register validates and creates an account. Checks run in a fixed order and
// the first failure wins; the final emptiness check is unreachable in
// practice because the earlier patterns already reject empty input, but it is
// kept to match the documented validation order.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	email := r.PostFormValue("email")

	exists, err := h.Accounts.ExistsByUsername(r.Context(), username)
	if err != nil {
		slog.Error("register: existence check failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var msg string
	switch {
	case exists:
		msg = msgAccountExists
	case !emailPattern.MatchString(email):
		msg = msgInvalidEmail
	case !usernamePattern.MatchString(username):
		msg = msgInvalidUsername
	case utf8.RuneCountInString(password) < 8:
		msg = msgPasswordTooShort
	case username == "" || password == "" || email == "":
		msg = msgFillForm
	default:
		hashed := auth.HashPassword(password, h.Secret)
		_, err := h.Accounts.Create(r.Context(), username, hashed, email)
		if errors.Is(err, repo.ErrDuplicateUsername) {
			// Lost the race against a concurrent registration with the same
			// name; the unique constraint caught it.
			msg = msgAccountExists
		} else if err != nil {
			slog.Error("register: create account failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		} else {
			msg = msgRegistered
		}
	}

	renderTemplate(w, "register.html", map[string]string{"Msg": msg})
}

// ==========================
// Logout
// ==========================
// Logout clears the session cookie unconditionally; logging out twice is fine.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	http.Redirect(w, r, auth.LoginPath, http.StatusFound)
}
