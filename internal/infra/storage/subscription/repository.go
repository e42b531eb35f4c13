package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	"github.com/m04kA/YSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/psqlbuilder"
)

// Repository read-only доступ к журналу подписок.
// Подписками владеет membership-ядро приложения; этот сервис их только
// читает для расчёта занятости и никогда не изменяет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlotID получает подписки слота, участвующие в расчёте занятости
// (scheduled и active), отсортированные по created_at - порядок важен
// для FIFO-распределения exception-мест
func (r *Repository) GetBySlotID(ctx context.Context, slotID int64) ([]*domain.MembershipSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countedStatuses := make([]string, len(domain.CountedSubscriptionStatuses))
	for i, s := range domain.CountedSubscriptionStatuses {
		countedStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"member_id",
		"slot_id",
		"status",
		"start_date",
		"end_date",
		"created_at",
		"updated_at",
	).
		From("membership_subscriptions").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"status": countedStatuses}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

func scanSubscriptions(rows *sql.Rows) ([]*domain.MembershipSubscription, error) {
	subs := make([]*domain.MembershipSubscription, 0)

	for rows.Next() {
		var sub domain.MembershipSubscription
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sub.ID,
			&sub.MemberID,
			&sub.SlotID,
			&sub.Status,
			&sub.StartDate,
			&sub.EndDate,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSubscriptions - scan row: %v", ErrScanRow, err)
		}

		sub.CreatedAt = createdAt.Time
		sub.UpdatedAt = updatedAt.Time

		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSubscriptions - rows error: %v", ErrScanRow, err)
	}

	return subs, nil
}
