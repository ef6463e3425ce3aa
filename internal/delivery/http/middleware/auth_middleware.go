package middleware

import (
	"context"
	"net/http"
	"strings"

	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/pkg/jwt"
	"hms-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	RoleKey    contextKey = "role"
	TokenIDKey contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract token from "Bearer <token>"
		tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		// Check the session was not revoked
		exists, err := m.sessionRepo.Exists(r.Context(), claims.UserID, claims.ID)
		if err != nil {
			m.log.Warnf("Failed to check session: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := ContextWithIdentity(r.Context(), claims.UserID, entity.Role(claims.Role), claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithIdentity attaches the caller identity to ctx.
func ContextWithIdentity(ctx context.Context, userID string, role entity.Role, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext extracts the caller role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
