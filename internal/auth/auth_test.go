package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	// printf 'longpass1sekrit' | sha1sum
	got := HashPassword("longpass1", "sekrit")
	want := "fe606059fbe128eca13d62d606b87b31192b5005"
	if got != want {
		t.Errorf("HashPassword: got %q, want %q", got, want)
	}
}

func TestHashPassword_SecretChangesDigest(t *testing.T) {
	if HashPassword("password1", "a") == HashPassword("password1", "b") {
		t.Error("digest should depend on the secret")
	}
}

func TestSessions_IssueParse(t *testing.T) {
	s := &Sessions{Secret: []byte("test-secret"), TTL: time.Hour}
	token, err := s.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sess, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !sess.LoggedIn || sess.UserID != 42 || sess.Username != "alice" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestSessions_Parse_WrongSecret(t *testing.T) {
	issuer := &Sessions{Secret: []byte("one"), TTL: time.Hour}
	verifier := &Sessions{Secret: []byte("two"), TTL: time.Hour}

	token, err := issuer.Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Parse(token); err != ErrInvalidSession {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSessions_Parse_Expired(t *testing.T) {
	s := &Sessions{Secret: []byte("test-secret"), TTL: -time.Minute}
	token, err := s.Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := s.Parse(token); err != ErrInvalidSession {
		t.Errorf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestSessions_Parse_Garbage(t *testing.T) {
	s := &Sessions{Secret: []byte("test-secret"), TTL: time.Hour}
	if _, err := s.Parse("not-a-token"); err != ErrInvalidSession {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSession_IsAdmin(t *testing.T) {
	if (Session{Username: "alice"}).IsAdmin() {
		t.Error("alice should not be admin")
	}
	if !(Session{Username: "admin"}).IsAdmin() {
		t.Error("admin should be admin")
	}
}

func TestRequireSession_NoCookie_Redirects(t *testing.T) {
	s := &Sessions{Secret: []byte("test-secret"), TTL: time.Hour}
	h := s.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a session")
	}))

	req := httptest.NewRequest("GET", "/attendance/home", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != LoginPath {
		t.Errorf("redirect: got %q, want %q", loc, LoginPath)
	}
}

func TestRequireSession_ValidCookie_SetsContext(t *testing.T) {
	s := &Sessions{Secret: []byte("test-secret"), TTL: time.Hour}
	token, err := s.Issue(7, "bob")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got Session
	h := s.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/attendance/home", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if got.UserID != 7 || got.Username != "bob" {
		t.Errorf("unexpected session in context: %+v", got)
	}
}

func TestRequireAdmin_NonAdmin_Redirects(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for non-admin")
	}))

	req := httptest.NewRequest("GET", "/attendance/admin", nil)
	req = req.WithContext(IntoContext(req.Context(), Session{LoggedIn: true, UserID: 2, Username: "alice"}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("status: got %d, want 302", rr.Code)
	}
}

func TestRequireAdmin_Admin_Passes(t *testing.T) {
	called := false
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/attendance/admin", nil)
	req = req.WithContext(IntoContext(req.Context(), Session{LoggedIn: true, UserID: 1, Username: "admin"}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !called {
		t.Error("admin handler not invoked")
	}
}
