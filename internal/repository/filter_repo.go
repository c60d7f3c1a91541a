package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"worktrack/internal/model"
	"worktrack/pkg/metrics"
)

// FilterRepository persists each staff member's column filter selections.
// This is the durable replacement for the fixed browser-storage key the
// board used before it moved server-side.
type FilterRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFilterRepository(db *pgxpool.Pool, logger *zap.Logger) *FilterRepository {
	return &FilterRepository{db: db, logger: logger}
}

// Get returns the stored filter state for a staff member. The second return
// is false when nothing has been stored yet.
func (r *FilterRepository) Get(ctx context.Context, staffID int) (model.FilterState, bool, error) {
	r.logger.Debug("Loading column filters", zap.Int("staff_id", staffID))
	query := `
        SELECT filters
        FROM user_column_filters
        WHERE staff_id = $1
    `
	start := time.Now()
	var raw []byte
	err := r.db.QueryRow(ctx, query, staffID).Scan(&raw)
	metrics.RecordDBQueryDuration("select", "user_column_filters", time.Since(start))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.FilterState{}, false, nil
	}
	if err != nil {
		r.logger.Error("Failed to load column filters",
			zap.Error(err),
			zap.Int("staff_id", staffID),
		)
		return model.FilterState{}, false, err
	}

	var state model.FilterState
	if err := json.Unmarshal(raw, &state); err != nil {
		r.logger.Error("Failed to decode stored column filters",
			zap.Error(err),
			zap.Int("staff_id", staffID),
		)
		return model.FilterState{}, false, err
	}

	r.logger.Debug("Column filters loaded",
		zap.Int("staff_id", staffID),
		zap.Int("filter_count", len(state.Filters)),
	)
	return state, true, nil
}

// Save upserts a staff member's filter state. Called on every filter change.
func (r *FilterRepository) Save(ctx context.Context, staffID int, state model.FilterState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO user_column_filters (staff_id, filters, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (staff_id)
        DO UPDATE SET filters = EXCLUDED.filters, updated_at = NOW()
    `
	start := time.Now()
	_, err = r.db.Exec(ctx, query, staffID, raw)
	metrics.RecordDBQueryDuration("upsert", "user_column_filters", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to save column filters",
			zap.Error(err),
			zap.Int("staff_id", staffID),
		)
		return err
	}

	r.logger.Info("Column filters saved",
		zap.Int("staff_id", staffID),
		zap.Int("filter_count", len(state.Filters)),
	)
	return nil
}
