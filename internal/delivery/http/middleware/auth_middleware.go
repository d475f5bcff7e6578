package middleware

import (
	"context"
	"errors"
	"net/http"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/session"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type contextKey string

const userKey contextKey = "auth_user"

// AuthMiddleware is the role guard. The session token travels in the cookie
// named after the required role; the request-body variant of the historical
// behavior is not supported.
type AuthMiddleware struct {
	sessions *session.Service
	db       *gorm.DB
	userRepo repository.UserRepository
	log      *logrus.Logger
}

func NewAuthMiddleware(sessions *session.Service, db *gorm.DB, userRepo repository.UserRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		db:       db,
		userRepo: userRepo,
		log:      log,
	}
}

// RequireRole authenticates the request from the role-named cookie, loads the
// user and refuses the request unless the stored role matches. On success the
// resolved user is attached to the request context.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName(role))
			if err != nil || cookie.Value == "" {
				response.Unauthorized(w, "Not Authenticated")
				return
			}

			userID, err := m.sessions.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrExpiredToken) {
					response.Unauthorized(w, "Session expired, please log in again")
					return
				}
				response.Unauthorized(w, "Invalid session token")
				return
			}

			user, err := m.userRepo.FindByID(m.db.WithContext(r.Context()), userID)
			if err != nil {
				m.log.Warnf("Failed to load session user %s: %+v", userID, err)
				response.InternalServerError(w, "Failed to resolve session")
				return
			}
			if user == nil || user.Role != role {
				response.Forbidden(w, "Not authorized for this resource")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser attaches a resolved user to the context the way the role guard
// does.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user the role guard resolved for the request.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey).(*entity.User)
	return user, ok
}
