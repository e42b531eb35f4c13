package trial

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

const selectTrialsQuery = `SELECT id, lead_id, slot_id, date, status, created_at ` +
	`FROM trial_bookings WHERE slot_id = $1 AND date = $2 AND status <> $3 ` +
	`ORDER BY created_at ASC`

func TestGetBySlotAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "lead_id", "slot_id", "date", "status", "created_at"}).
		AddRow(int64(1), int64(201), int64(7), day, string(domain.TrialStatusBooked), createdAt).
		AddRow(int64(2), int64(202), int64(7), day, string(domain.TrialStatusAttended), createdAt.Add(time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(selectTrialsQuery)).
		WithArgs(int64(7), day, string(domain.TrialStatusCancelled)).
		WillReturnRows(rows)

	trials, err := repo.GetBySlotAndDate(context.Background(), 7, day)
	require.NoError(t, err)
	require.Len(t, trials, 2)

	assert.Equal(t, int64(201), trials[0].LeadID)
	assert.Equal(t, domain.TrialStatusBooked, trials[0].Status)
	assert.Equal(t, int64(202), trials[1].LeadID)
	assert.Equal(t, createdAt, trials[0].CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlotAndDate_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectTrialsQuery)).
		WithArgs(int64(7), day, string(domain.TrialStatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lead_id", "slot_id", "date", "status", "created_at"}))

	trials, err := repo.GetBySlotAndDate(context.Background(), 7, day)
	require.NoError(t, err)
	assert.Empty(t, trials)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlotAndDate_NormalizesDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Время суток отбрасывается: фильтр по календарной дате
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	withTime := time.Date(2026, 3, 15, 18, 45, 12, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectTrialsQuery)).
		WithArgs(int64(7), day, string(domain.TrialStatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lead_id", "slot_id", "date", "status", "created_at"}))

	_, err = repo.GetBySlotAndDate(context.Background(), 7, withTime)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
