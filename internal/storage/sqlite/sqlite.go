// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	driver "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection enforces foreign keys.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// classify maps driver constraint failures onto storage sentinels using
// SQLite's extended result codes.
func classify(err error) error {
	var sqliteErr *driver.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %v", storage.ErrConflict, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: referenced record: %v", storage.ErrNotFound, err)
	}
	return err
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %w: %s", kind, storage.ErrNotFound, id)
}

// expectOne turns a zero-row write into ErrNotFound.
func expectOne(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

const campColumns = `id, name, location, area, type, start_date, end_date,
	daily_food_units_planned, default_food_units_per_camper_per_day`

type scanner interface {
	Scan(dest ...any) error
}

func scanCamp(row scanner) (*models.Camp, error) {
	camp := &models.Camp{}
	var campType string
	err := row.Scan(&camp.ID, &camp.Name, &camp.Location, &camp.Area, &campType,
		&camp.StartDate, &camp.EndDate,
		&camp.DailyFoodUnitsPlanned, &camp.DefaultFoodUnitsPerCamper)
	if err != nil {
		return nil, err
	}
	camp.Type = models.CampType(campType)
	return camp, nil
}

// CreateCamp persists a new camp to the database.
func (s *SQLiteStore) CreateCamp(ctx context.Context, camp *models.Camp) error {
	if camp.ID == "" {
		camp.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO camps (`+campColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		camp.ID, camp.Name, camp.Location, camp.Area, string(camp.Type),
		camp.StartDate, camp.EndDate,
		camp.DailyFoodUnitsPlanned, camp.DefaultFoodUnitsPerCamper,
	)
	if err != nil {
		return fmt.Errorf("failed to insert camp: %w", classify(err))
	}
	return nil
}

// GetCamp retrieves a camp by ID.
func (s *SQLiteStore) GetCamp(ctx context.Context, campID string) (*models.Camp, error) {
	camp, err := scanCamp(s.db.QueryRowContext(ctx,
		`SELECT `+campColumns+` FROM camps WHERE id = ?`, campID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("camp", campID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get camp: %w", err)
	}
	return camp, nil
}

// ListCamps retrieves all camps ordered by start date, then name.
func (s *SQLiteStore) ListCamps(ctx context.Context) ([]*models.Camp, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+campColumns+` FROM camps ORDER BY start_date, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}
	defer rows.Close()

	var camps []*models.Camp
	for rows.Next() {
		camp, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, camp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate camps: %w", err)
	}
	return camps, nil
}

// UpdateCamp replaces every editable field of a camp.
func (s *SQLiteStore) UpdateCamp(ctx context.Context, camp *models.Camp) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE camps
		 SET name = ?, location = ?, area = ?, type = ?, start_date = ?, end_date = ?,
		     daily_food_units_planned = ?, default_food_units_per_camper_per_day = ?
		 WHERE id = ?`,
		camp.Name, camp.Location, camp.Area, string(camp.Type),
		camp.StartDate, camp.EndDate,
		camp.DailyFoodUnitsPlanned, camp.DefaultFoodUnitsPerCamper,
		camp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update camp: %w", classify(err))
	}
	return expectOne(res, "camp", camp.ID)
}

// DeleteCamp removes a camp. Enrollments, activities, top-ups and leader
// assignments go with it.
func (s *SQLiteStore) DeleteCamp(ctx context.Context, campID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM camps WHERE id = ?", campID)
	if err != nil {
		return fmt.Errorf("failed to delete camp: %w", classify(err))
	}
	return expectOne(res, "camp", campID)
}
