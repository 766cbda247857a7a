package auth

import (
	"context"
	"net/http"
)

// LoginPath is where unauthenticated (and unauthorized) requests are sent.
// There is no "forbidden" page; every rejection is a redirect to login.
const LoginPath = "/attendance/login"

type ctxKey struct{}

// IntoContext stores the session on the request context.
func IntoContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session placed by RequireSession, or false when the
// handler is reached without the middleware (tests, misconfigured routes).
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(Session)
	return sess, ok
}

// RequireSession verifies the session cookie and stores the typed session on
// the context. Requests without a valid session are redirected to login.
func (s *Sessions) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.FromRequest(r)
		if err != nil {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(IntoContext(r.Context(), sess)))
	})
}

// RequireAdmin allows only the hardcoded admin account through. Use inside a
// RequireSession group. Non-admin sessions get the same login redirect as
// anonymous users, never a forbidden page with data behind it.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok || !sess.IsAdmin() {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
