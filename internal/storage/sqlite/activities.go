package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/camptrack/internal/models"
)

// CreateActivity persists a new activity.
func (s *SQLiteStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO activities (id, camp_id, name, date) VALUES (?, ?, ?, ?)",
		activity.ID, activity.CampID, strings.TrimSpace(activity.Name), activity.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", classify(err))
	}
	return nil
}

// DeleteActivity removes an activity and its camper assignments.
func (s *SQLiteStore) DeleteActivity(ctx context.Context, activityID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", activityID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return expectOne(res, "activity", activityID)
}

// AssignCampersToActivity adds campers to an activity in one transaction.
// Campers already assigned are left as they are.
func (s *SQLiteStore) AssignCampersToActivity(ctx context.Context, activityID string, camperIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, camperID := range camperIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO camper_activity (activity_id, camper_id) VALUES (?, ?)",
			activityID, camperID,
		)
		if err != nil {
			return fmt.Errorf("failed to assign camper to activity: %w", classify(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListCampActivities retrieves a camp's activities.
func (s *SQLiteStore) ListCampActivities(ctx context.Context, campID string) ([]*models.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, camp_id, name, date FROM activities WHERE camp_id = ? ORDER BY date, name",
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.CampID, &a.Name, &a.Date); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}

// ListActivityCampers retrieves the camper IDs assigned to an activity.
func (s *SQLiteStore) ListActivityCampers(ctx context.Context, activityID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT camper_id FROM camper_activity WHERE activity_id = ? ORDER BY camper_id",
		activityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity campers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan activity camper: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity campers: %w", err)
	}
	return ids, nil
}

// ListActivityAllocations joins activities, participation and enrollments
// for one camp. Campers assigned to an activity but not enrolled in the
// camp are not returned.
func (s *SQLiteStore) ListActivityAllocations(ctx context.Context, campID string) ([]models.ActivityAllocation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.date, ca.camper_id, cc.food_units_per_day
		 FROM activities a
		 JOIN camper_activity ca ON ca.activity_id = a.id
		 JOIN camp_campers cc ON cc.camper_id = ca.camper_id AND cc.camp_id = a.camp_id
		 WHERE a.camp_id = ?
		 ORDER BY a.date, a.id, ca.camper_id`,
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity allocations: %w", err)
	}
	defer rows.Close()

	var allocations []models.ActivityAllocation
	for rows.Next() {
		var a models.ActivityAllocation
		if err := rows.Scan(&a.ActivityID, &a.Date, &a.CamperID, &a.FoodUnitsPerDay); err != nil {
			return nil, fmt.Errorf("failed to scan activity allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity allocations: %w", err)
	}
	return allocations, nil
}
