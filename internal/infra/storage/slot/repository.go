package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	"github.com/m04kA/YSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/psqlbuilder"
)

const slotColumns = "id, display_name, start_time, end_time, regular_capacity, exception_capacity, is_active, created_at, updated_at"

// Repository репозиторий для работы со слотами (реестр слотов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
func (r *Repository) Create(ctx context.Context, slot *domain.SessionSlot) (*domain.SessionSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_slots").
		Columns(
			"display_name",
			"start_time",
			"end_time",
			"regular_capacity",
			"exception_capacity",
			"is_active",
		).
		Values(
			slot.DisplayName,
			slot.StartTime,
			slot.EndTime,
			slot.RegularCapacity,
			slot.ExceptionCapacity,
			slot.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlots().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetActive получает все активные слоты в порядке создания
func (r *Repository) GetActive(ctx context.Context) ([]*domain.SessionSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlots().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// UpdateCapacity обновляет вместимость слота (единственные изменяемые поля
// после создания) и возвращает обновлённый слот
func (r *Repository) UpdateCapacity(ctx context.Context, id int64, regularCapacity, exceptionCapacity int) (*domain.SessionSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_slots").
		Set("regular_capacity", regularCapacity).
		Set("exception_capacity", exceptionCapacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + slotColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCapacity - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCapacity - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// Deactivate помечает слот неактивным (физическое удаление запрещено,
// на слот ссылаются исторические записи)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_slots").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func selectSlots() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"display_name",
		"start_time",
		"end_time",
		"regular_capacity",
		"exception_capacity",
		"is_active",
		"created_at",
		"updated_at",
	).From("session_slots")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.SessionSlot, error) {
	var slot domain.SessionSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.DisplayName,
		&slot.StartTime,
		&slot.EndTime,
		&slot.RegularCapacity,
		&slot.ExceptionCapacity,
		&slot.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.SessionSlot, error) {
	slots := make([]*domain.SessionSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
