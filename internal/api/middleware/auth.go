package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// SessionName is the cookie holding the browser session
const SessionName = "tabloid_session"

const sessionUserIDKey = "userId"

// AuthMiddleware resolves the authenticated user id for a request.
// API clients send a Bearer JWT issued by the external identity provider
// (numeric user id in the sub claim, HS256); browser clients carry the id
// in a session cookie written by the login flow. The middleware extracts
// the id once and injects it into the request context; handlers pass it
// to services as an explicit argument.
type AuthMiddleware struct {
	jwtSecret []byte
	store     *sessions.CookieStore
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtSecret []byte, store *sessions.CookieStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		store:     store,
	}
}

// RequireAuth ensures the request carries a valid identity
// If not authenticated, returns 401; otherwise injects the user id into context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.identify(r)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the user id if the request is authenticated, but
// doesn't require it. Used for public reads where authors still get the
// draft-visibility fallback on their own posts.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.identify(r)
		if err != nil {
			// Anonymous request - continue without user context
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify resolves the user id from the Bearer token or the session cookie
func (m *AuthMiddleware) identify(r *http.Request) (int64, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return 0, fmt.Errorf("invalid Authorization header format, expected: Bearer <token>")
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return m.verifyToken(token)
	}

	return m.sessionUserID(r)
}

// verifyToken validates the JWT signature and extracts the numeric user id
// from the sub claim
func (m *AuthMiddleware) verifyToken(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	if claims.Subject == "" {
		return 0, fmt.Errorf("missing sub claim")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric sub claim %q", claims.Subject)
	}
	if userID <= 0 {
		return 0, fmt.Errorf("invalid user id %d in sub claim", userID)
	}

	return userID, nil
}

// sessionUserID reads the user id from the browser session cookie
func (m *AuthMiddleware) sessionUserID(r *http.Request) (int64, error) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return 0, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.IsNew {
		return 0, fmt.Errorf("no session")
	}

	userID, ok := session.Values[sessionUserIDKey].(int64)
	if !ok || userID <= 0 {
		return 0, fmt.Errorf("no user id in session")
	}

	return userID, nil
}

// GetUserID extracts the authenticated user id from the request context
// Returns 0 if not authenticated
func GetUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(UserIDKey).(int64)
	return id
}

// GetAuthenticatedUserID extracts the authenticated user id from a context
// Returns 0 if not authenticated
func GetAuthenticatedUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
