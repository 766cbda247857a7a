package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yorul/attendance-management/internal/models"
)

// CookieName is the session cookie set after a successful login.
const CookieName = "attendance_session"

// ErrInvalidSession covers missing, expired, malformed, and badly signed
// session tokens. Callers redirect to login without distinguishing.
var ErrInvalidSession = errors.New("invalid session")

// Session is the typed session record carried in the signed cookie.
type Session struct {
	LoggedIn bool
	UserID   int
	Username string
}

// IsAdmin reports whether this session may view the attendance report.
func (s Session) IsAdmin() bool {
	return s.Username == models.AdminUsername
}

// Sessions issues and verifies session cookies. The tokens are HS256 JWTs
// signed with the application secret, so the server stays stateless.
type Sessions struct {
	Secret []byte
	TTL    time.Duration
}

// Issue signs a session token for the given account.
func (s *Sessions) Issue(userID int, username string) (string, error) {
	claims := jwt.MapClaims{
		"loggedin": true,
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(s.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies a token and decodes it into a Session. Every failure mode
// collapses into ErrInvalidSession.
func (s *Sessions) Parse(tokenStr string) (Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	loggedIn, _ := claims["loggedin"].(bool)
	userID, okID := claims["user_id"].(float64)
	username, okName := claims["username"].(string)
	if !loggedIn || !okID || !okName {
		return Session{}, ErrInvalidSession
	}
	return Session{LoggedIn: true, UserID: int(userID), Username: username}, nil
}

// SetCookie attaches a freshly issued session token to the response.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie. Safe to call with no session.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
}

// FromRequest reads and verifies the session cookie on r.
func (s *Sessions) FromRequest(r *http.Request) (Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Session{}, ErrInvalidSession
	}
	return s.Parse(c.Value)
}
