package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

type contextKey string

const userIDKey contextKey = "userId"

const sessionCookieName = "sessionId"

// CheckSession resolves the sessionId cookie to a user id and stores it
// on the request context. Requests without a live session are rejected
// before the handler runs.
func CheckSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				respondError(w, appErrors.ErrAuthenticationRequired)
				return
			}

			sess, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				respondError(w, err)
				return
			}
			userID, err := uuid.Parse(sess.UserID)
			if err != nil {
				respondError(w, appErrors.ErrSessionExpired)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFrom(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return id
}
