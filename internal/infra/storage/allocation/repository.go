package allocation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	"github.com/m04kA/YSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

// Repository репозиторий назначений планов занятий на слот и дату
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое scheduled-назначение плана.
// Уникальный частичный индекс (slot_id, date) WHERE status = 'scheduled'
// гарантирует инвариант "не более одного scheduled на ключ" на уровне
// хранилища: конкурентная вставка вернёт ErrDuplicateAllocation
func (r *Repository) Create(ctx context.Context, alloc *domain.SessionPlanAllocation) (*domain.SessionPlanAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_plan_allocations").
		Columns(
			"session_plan_id",
			"slot_id",
			"date",
			"status",
		).
		Values(
			alloc.SessionPlanID,
			alloc.SlotID,
			domain.NormalizeDate(alloc.Date),
			alloc.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&alloc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateAllocation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return alloc, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionPlanAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAllocations().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	alloc, err := scanAllocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan allocation: %v", ErrScanRow, err)
	}

	return alloc, nil
}

// GetScheduledBySlotAndDate получает текущее scheduled-назначение для
// (слот, дата). Если его нет - ErrAllocationNotFound.
// Внутри транзакции строка блокируется (FOR UPDATE) - используется
// последовательностью cancel-then-allocate
func (r *Repository) GetScheduledBySlotAndDate(ctx context.Context, slotID int64, date time.Time) (*domain.SessionPlanAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAllocations().
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		Where(squirrel.Eq{"status": string(domain.AllocationStatusScheduled)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledBySlotAndDate - build select query: %v", ErrBuildQuery, err)
	}

	alloc, err := scanAllocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledBySlotAndDate - scan allocation: %v", ErrScanRow, err)
	}

	return alloc, nil
}

// GetScheduledByDate получает все scheduled-назначения на дату
// (страница планирования дня)
func (r *Repository) GetScheduledByDate(ctx context.Context, date time.Time) ([]*domain.SessionPlanAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAllocations().
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		Where(squirrel.Eq{"status": string(domain.AllocationStatusScheduled)}).
		OrderBy("slot_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAllocations(rows)
}

// Cancel переводит назначение в cancelled (soft-cancel, запись остаётся
// для истории). Если назначение не найдено - ErrAllocationNotFound
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_plan_allocations").
		Set("status", string(domain.AllocationStatusCancelled)).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAllocationNotFound
	}

	return nil
}

// CancelScheduledBySlotAndDate снимает текущее scheduled-назначение для
// (слот, дата), если оно есть. Отсутствие scheduled-записи не ошибка:
// вызывается перед каждым новым назначением
func (r *Repository) CancelScheduledBySlotAndDate(ctx context.Context, slotID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_plan_allocations").
		Set("status", string(domain.AllocationStatusCancelled)).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		Where(squirrel.Eq{"status": string(domain.AllocationStatusScheduled)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelScheduledBySlotAndDate - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelScheduledBySlotAndDate - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func selectAllocations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"session_plan_id",
		"slot_id",
		"date",
		"status",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("session_plan_allocations")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAllocation(row rowScanner) (*domain.SessionPlanAllocation, error) {
	var alloc domain.SessionPlanAllocation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&alloc.ID,
		&alloc.SessionPlanID,
		&alloc.SlotID,
		&alloc.Date,
		&alloc.Status,
		&alloc.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return &alloc, nil
}

func scanAllocations(rows *sql.Rows) ([]*domain.SessionPlanAllocation, error) {
	allocations := make([]*domain.SessionPlanAllocation, 0)

	for rows.Next() {
		alloc, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAllocations - scan row: %v", ErrScanRow, err)
		}
		allocations = append(allocations, alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAllocations - rows error: %v", ErrScanRow, err)
	}

	return allocations, nil
}
