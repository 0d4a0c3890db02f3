package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/camptrack/internal/models"
)

// CreateCamper persists a new camper. Names are matched case-insensitively
// together with the date of birth for uniqueness.
func (s *SQLiteStore) CreateCamper(ctx context.Context, camper *models.Camper) error {
	if camper.ID == "" {
		camper.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO campers (id, first_name, last_name, dob, emergency_contact)
		 VALUES (?, ?, ?, ?, ?)`,
		camper.ID,
		strings.TrimSpace(camper.FirstName),
		strings.TrimSpace(camper.LastName),
		strings.TrimSpace(camper.DateOfBirth),
		strings.TrimSpace(camper.EmergencyContact),
	)
	if err != nil {
		return fmt.Errorf("failed to insert camper: %w", classify(err))
	}
	return nil
}

// EnrollCamper links a camper to a camp. A negative FoodUnitsPerDay is
// replaced with the camp's default allocation, and the enrollment is
// updated with the value actually stored.
func (s *SQLiteStore) EnrollCamper(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var defaultUnits int
	err = tx.QueryRowContext(ctx,
		"SELECT default_food_units_per_camper_per_day FROM camps WHERE id = ?",
		enrollment.CampID,
	).Scan(&defaultUnits)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("camp", enrollment.CampID)
	}
	if err != nil {
		return fmt.Errorf("failed to get camp default food: %w", err)
	}

	if enrollment.FoodUnitsPerDay < 0 {
		enrollment.FoodUnitsPerDay = defaultUnits
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO camp_campers (id, camp_id, camper_id, food_units_per_day)
		 VALUES (?, ?, ?, ?)`,
		enrollment.ID, enrollment.CampID, enrollment.CamperID, enrollment.FoodUnitsPerDay,
	)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateEnrollmentFood overrides one camper's per-day allocation.
func (s *SQLiteStore) UpdateEnrollmentFood(ctx context.Context, enrollmentID string, unitsPerDay int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE camp_campers SET food_units_per_day = ? WHERE id = ?",
		unitsPerDay, enrollmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update enrollment food: %w", err)
	}
	return expectOne(res, "enrollment", enrollmentID)
}

// ListCampCampers retrieves a camp's enrollments with camper names.
func (s *SQLiteStore) ListCampCampers(ctx context.Context, campID string) ([]*models.Enrollment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cc.id, cc.camp_id, cc.camper_id, cc.food_units_per_day, c.first_name, c.last_name
		 FROM camp_campers cc
		 JOIN campers c ON c.id = cc.camper_id
		 WHERE cc.camp_id = ?
		 ORDER BY lower(c.last_name), lower(c.first_name)`,
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list camp campers: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.ID, &e.CampID, &e.CamperID, &e.FoodUnitsPerDay, &e.FirstName, &e.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enrollments: %w", err)
	}
	return enrollments, nil
}
