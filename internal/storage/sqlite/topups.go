package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/camptrack/internal/models"
)

// AddStockTopUp records a change to a camp's daily planned food units.
func (s *SQLiteStore) AddStockTopUp(ctx context.Context, topUp *models.StockTopUp) error {
	if topUp.ID == "" {
		topUp.ID = uuid.New().String()
	}
	if topUp.CreatedAt == 0 {
		topUp.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO stock_topups (id, camp_id, delta_daily_units, created_at)
		 VALUES (?, ?, ?, ?)`,
		topUp.ID, topUp.CampID, topUp.DeltaDailyUnits, topUp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock top-up: %w", classify(err))
	}
	return nil
}

// ListStockTopUps retrieves a camp's top-ups, newest first.
func (s *SQLiteStore) ListStockTopUps(ctx context.Context, campID string) ([]*models.StockTopUp, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, camp_id, delta_daily_units, created_at
		 FROM stock_topups WHERE camp_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock top-ups: %w", err)
	}
	defer rows.Close()

	var topUps []*models.StockTopUp
	for rows.Next() {
		t := &models.StockTopUp{}
		if err := rows.Scan(&t.ID, &t.CampID, &t.DeltaDailyUnits, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock top-up: %w", err)
		}
		topUps = append(topUps, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock top-ups: %w", err)
	}
	return topUps, nil
}
