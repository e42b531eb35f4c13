package trial

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	"github.com/m04kA/YSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/psqlbuilder"
)

// Repository read-only доступ к журналу пробных занятий.
// Пробными занятиями владеет leads-ядро приложения; здесь они только
// читаются для отображения нагрузки рядом с занятостью слота
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пробных занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlotAndDate получает неотменённые пробные занятия слота на дату
// в порядке создания. Занятость слота список не меняет: пробные занятия
// отображаются рядом со снапшотом, их количество - len результата
func (r *Repository) GetBySlotAndDate(ctx context.Context, slotID int64, date time.Time) ([]*domain.TrialBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"lead_id",
		"slot_id",
		"date",
		"status",
		"created_at",
	).
		From("trial_bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		Where(squirrel.NotEq{"status": string(domain.TrialStatusCancelled)}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTrials(rows)
}

func scanTrials(rows *sql.Rows) ([]*domain.TrialBooking, error) {
	trials := make([]*domain.TrialBooking, 0)

	for rows.Next() {
		var booking domain.TrialBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.LeadID,
			&booking.SlotID,
			&booking.Date,
			&booking.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTrials - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		trials = append(trials, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTrials - rows error: %v", ErrScanRow, err)
	}

	return trials, nil
}
