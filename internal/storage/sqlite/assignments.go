package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/camptrack/internal/models"
)

const assignmentSelect = `
	SELECT la.id, la.leader_user_id, u.username, la.camp_id,
	       c.name, c.start_date, c.end_date, c.location, c.area
	FROM leader_assignments la
	JOIN camps c ON c.id = la.camp_id
	JOIN users u ON u.id = la.leader_user_id`

// AssignLeader links a leader to a camp. The (leader, camp) pair is unique.
func (s *SQLiteStore) AssignLeader(ctx context.Context, assignment *models.LeaderAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO leader_assignments (id, leader_user_id, camp_id) VALUES (?, ?, ?)",
		assignment.ID, assignment.LeaderID, assignment.CampID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leader assignment: %w", classify(err))
	}
	return nil
}

// RemoveLeaderAssignment deletes an assignment owned by the given leader.
func (s *SQLiteStore) RemoveLeaderAssignment(ctx context.Context, assignmentID, leaderID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM leader_assignments WHERE id = ? AND leader_user_id = ?",
		assignmentID, leaderID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete leader assignment: %w", err)
	}
	return expectOne(res, "leader assignment", assignmentID)
}

// ListLeaderAssignments retrieves one leader's assignments by camp start date.
func (s *SQLiteStore) ListLeaderAssignments(ctx context.Context, leaderID string) ([]*models.LeaderAssignment, error) {
	return s.queryAssignments(ctx,
		assignmentSelect+` WHERE la.leader_user_id = ? ORDER BY c.start_date, c.name`,
		leaderID,
	)
}

// ListAllLeaderAssignments retrieves every assignment grouped by leader.
func (s *SQLiteStore) ListAllLeaderAssignments(ctx context.Context) ([]*models.LeaderAssignment, error) {
	return s.queryAssignments(ctx,
		assignmentSelect+` ORDER BY u.username, la.leader_user_id, c.start_date, c.name`,
	)
}

func (s *SQLiteStore) queryAssignments(ctx context.Context, query string, args ...any) ([]*models.LeaderAssignment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leader assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.LeaderAssignment
	for rows.Next() {
		a := &models.LeaderAssignment{}
		err := rows.Scan(&a.ID, &a.LeaderID, &a.LeaderName, &a.CampID,
			&a.CampName, &a.StartDate, &a.EndDate, &a.Location, &a.Area)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leader assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leader assignments: %w", err)
	}
	return assignments, nil
}
