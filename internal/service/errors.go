package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"connectrpc.com/connect"

	"github.com/mmynk/camptrack/internal/middleware"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/storage"
)

var (
	errNoIdentity      = errors.New("request carries no caller identity")
	errForbidden       = errors.New("caller's role may not perform this operation")
	errOtherLeader     = errors.New("leaders may only act on their own records")
	errNotALeader      = errors.New("user is not a leader")
	errLeaderBusy      = errors.New("leader is already assigned to an overlapping camp")
	errOutsideCampDays = errors.New("activity date is outside the camp dates")
)

// staff may manage camps and read every leader's records.
var staff = []models.Role{models.RoleAdmin, models.RoleCoordinator}

// requireRole rejects callers whose role is not in allowed.
func requireRole(ctx context.Context, allowed ...models.Role) error {
	if middleware.GetUserID(ctx) == "" {
		return connect.NewError(connect.CodeUnauthenticated, errNoIdentity)
	}
	role := middleware.GetRole(ctx)
	if !slices.Contains(allowed, role) {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("%w: %s", errForbidden, role))
	}
	return nil
}

// resolveLeader returns the leader a request is about. Staff may name any
// leader; a leader may only name themself, and an empty ID means the caller.
func resolveLeader(ctx context.Context, leaderID string) (string, error) {
	if err := requireRole(ctx, models.RoleAdmin, models.RoleCoordinator, models.RoleLeader); err != nil {
		return "", err
	}
	caller := middleware.GetUserID(ctx)
	if leaderID == "" {
		return caller, nil
	}
	if middleware.GetRole(ctx) == models.RoleLeader && leaderID != caller {
		return "", connect.NewError(connect.CodePermissionDenied, errOtherLeader)
	}
	return leaderID, nil
}

func invalidArgument(op string, err error) error {
	slog.Warn(op+" rejected", "error", err)
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// storageError maps store sentinels onto Connect codes.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Warn(op+" failed", "error", err)
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		slog.Warn(op+" failed", "error", err)
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
