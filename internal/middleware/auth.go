package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/camptrack/internal/auth"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/storage"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for storing the authenticated user's role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the caller's role from the context.
// Returns empty string if not found.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// WithIdentity returns a copy of ctx carrying the given caller.
func WithIdentity(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, RoleKey, role)
}

// Accounts looks up the user a token was issued to.
type Accounts interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// RequireAuth returns a middleware that validates bearer tokens and requires
// authentication. The token's user must still exist and be enabled; their
// stored role is added to the request context.
func RequireAuth(jwtManager *auth.JWTManager, accounts Accounts) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			user, err := accounts.GetUser(ctx, claims.UserID())
			if errors.Is(err, storage.ErrNotFound) {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrUnknownAccount)
			}
			if err != nil {
				slog.Error("Account lookup failed", "user_id", claims.UserID(), "error", err)
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			if !user.Enabled {
				return nil, connect.NewError(connect.CodePermissionDenied, auth.ErrAccountDisabled)
			}

			return next(WithIdentity(ctx, user.ID, user.Role), req)
		}
	}
}
