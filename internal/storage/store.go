// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/camptrack/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned (wrapped) when a write violates a uniqueness rule.
	ErrConflict = errors.New("already exists")
)

// CampReader is the read side used by the food projection and shortage sweep.
type CampReader interface {
	// GetCamp retrieves a camp by ID. Returns ErrNotFound if missing.
	GetCamp(ctx context.Context, campID string) (*models.Camp, error)

	// ListCamps returns every camp ordered by start date, then name.
	ListCamps(ctx context.Context) ([]*models.Camp, error)

	// ListStockTopUps returns a camp's top-ups, newest first.
	ListStockTopUps(ctx context.Context, campID string) ([]*models.StockTopUp, error)

	// ListCampCampers returns a camp's enrollments ordered by camper name.
	ListCampCampers(ctx context.Context, campID string) ([]*models.Enrollment, error)

	// ListActivityAllocations returns one row per camper/activity pairing for
	// campers enrolled in the camp, carrying the activity date and the
	// camper's per-day food units.
	ListActivityAllocations(ctx context.Context, campID string) ([]models.ActivityAllocation, error)

	// ListCampActivities returns a camp's activities ordered by date, then name.
	ListCampActivities(ctx context.Context, campID string) ([]*models.Activity, error)

	// ListActivityCampers returns the camper IDs assigned to an activity.
	ListActivityCampers(ctx context.Context, activityID string) ([]string, error)
}

// LeaderReader is the read side used by the pay aggregator.
type LeaderReader interface {
	// ListLeaderAssignments returns a leader's assignments with camp details,
	// ordered by camp start date.
	ListLeaderAssignments(ctx context.Context, leaderID string) ([]*models.LeaderAssignment, error)

	// ListAllLeaderAssignments returns every assignment ordered by leader
	// username, then camp start date.
	ListAllLeaderAssignments(ctx context.Context) ([]*models.LeaderAssignment, error)

	// GetSetting returns the value stored under key, or fallback if unset.
	GetSetting(ctx context.Context, key, fallback string) (string, error)
}

// Store defines the interface for CampTrack storage operations.
// This abstraction allows swapping storage backends without changing the
// report engine or the service layer.
type Store interface {
	CampReader
	LeaderReader

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	// SetUserEnabled switches an account on or off. Disabled accounts are
	// refused at the API boundary.
	SetUserEnabled(ctx context.Context, userID string, enabled bool) error

	// CreateCamp persists a new camp. camp.ID is populated by the store.
	CreateCamp(ctx context.Context, camp *models.Camp) error
	// UpdateCamp replaces a camp's fields. Returns ErrNotFound if missing.
	UpdateCamp(ctx context.Context, camp *models.Camp) error
	// DeleteCamp removes a camp and everything that hangs off it.
	DeleteCamp(ctx context.Context, campID string) error

	CreateCamper(ctx context.Context, camper *models.Camper) error
	// EnrollCamper links a camper to a camp. A negative FoodUnitsPerDay
	// takes the camp's default allocation.
	EnrollCamper(ctx context.Context, enrollment *models.Enrollment) error
	UpdateEnrollmentFood(ctx context.Context, enrollmentID string, unitsPerDay int) error

	CreateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, activityID string) error
	// AssignCampersToActivity adds campers to an activity, ignoring ones
	// already assigned.
	AssignCampersToActivity(ctx context.Context, activityID string, camperIDs []string) error

	AddStockTopUp(ctx context.Context, topUp *models.StockTopUp) error

	AssignLeader(ctx context.Context, assignment *models.LeaderAssignment) error
	RemoveLeaderAssignment(ctx context.Context, assignmentID, leaderID string) error

	SetSetting(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
