package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &database.DB{Pool: mock}
}

func TestAttendanceRepository_GetByEmployeeAndDate(t *testing.T) {
	query := regexp.QuoteMeta("FROM attendances")

	t.Run("returns latest row for the day", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewAttendanceRepository(db)

		punchIn := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		now := time.Now().UTC()
		rows := pgxmock.NewRows([]string{
			"id", "employee_id", "work_date", "punch_in", "punch_out",
			"total_hours", "status", "created_at", "updated_at",
		}).AddRow(
			"att-1", "emp-1", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			&punchIn, nil, nil, attendance.StatusInProgress, now, now,
		)

		mock.ExpectQuery(query).
			WithArgs("emp-1", "2026-03-09").
			WillReturnRows(rows)

		att, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-03-09")
		require.NoError(t, err)
		require.NotNil(t, att)
		assert.Equal(t, "att-1", att.ID)
		assert.Equal(t, attendance.StatusInProgress, att.Status)
		require.NotNil(t, att.PunchIn)
		assert.True(t, att.PunchIn.Equal(punchIn))
		assert.Nil(t, att.PunchOut)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no record for the day yields nil, not an error", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewAttendanceRepository(db)

		mock.ExpectQuery(query).
			WithArgs("emp-1", "2026-03-09").
			WillReturnError(pgx.ErrNoRows)

		att, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-03-09")
		assert.NoError(t, err)
		assert.Nil(t, att)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewAttendanceRepository(db)

		mock.ExpectQuery(query).
			WithArgs("emp-1", "2026-03-09").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-03-09")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get attendance by employee and date")
	})
}

func TestAttendanceRepository_Update(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE attendances")

	t.Run("updates existing row", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewAttendanceRepository(db)

		mock.ExpectExec(query).
			WithArgs("att-1", pgxmock.AnyArg(), pgxmock.AnyArg(), attendance.StatusOnTime).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		punchOut := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
		err := repo.Update(context.Background(), attendance.Attendance{
			ID:       "att-1",
			PunchOut: &punchOut,
			Status:   attendance.StatusOnTime,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewAttendanceRepository(db)

		mock.ExpectExec(query).
			WithArgs("att-missing", pgxmock.AnyArg(), pgxmock.AnyArg(), attendance.StatusOnTime).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), attendance.Attendance{
			ID:     "att-missing",
			Status: attendance.StatusOnTime,
		})
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})
}

func TestAttendanceRepository_GetStaleOpenRecords(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)

	punchIn := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "work_date", "punch_in", "punch_out",
		"total_hours", "status", "created_at", "updated_at",
	}).AddRow(
		"att-stale", "emp-1", time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		&punchIn, nil, nil, attendance.StatusInProgress, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE punch_out IS NULL")).
		WithArgs("2026-03-07").
		WillReturnRows(rows)

	stale, err := repo.GetStaleOpenRecords(context.Background(), "2026-03-07")
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "att-stale", stale[0].ID)
	assert.True(t, stale[0].IsOpen())

	assert.NoError(t, mock.ExpectationsWereMet())
}
