package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clockwork-hq/timeclock-backend-go/internal/config"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	stale      []attendance.Attendance
	staleErr   error
	updated    []attendance.Attendance
	updateErrs map[string]error
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ string) (*attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if err, ok := r.updateErrs[att.ID]; ok {
		return err
	}
	r.updated = append(r.updated, att)
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) GetStaleOpenRecords(_ context.Context, _ string) ([]attendance.Attendance, error) {
	return r.stale, r.staleErr
}

func staleRecord(id string, punchIn time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:         id,
		EmployeeID: "emp-1",
		WorkDate:   time.Date(punchIn.Year(), punchIn.Month(), punchIn.Day(), 0, 0, 0, 0, time.UTC),
		PunchIn:    &punchIn,
		Status:     attendance.StatusInProgress,
	}
}

func testJobs(repo *fakeAttendanceRepo) *AttendanceJobs {
	return NewAttendanceJobs(repo, config.ClockConfig{
		Timezone:          "UTC",
		Location:          time.UTC,
		StandardWorkHours: 8,
		AutoCloseAfter:    2,
	})
}

func TestAutoCloseStaleAttendances(t *testing.T) {
	punchIn := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{stale: []attendance.Attendance{staleRecord("att-1", punchIn)}}

	err := testJobs(repo).AutoCloseStaleAttendances(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)

	closed := repo.updated[0]
	require.NotNil(t, closed.PunchOut)
	assert.True(t, closed.PunchOut.Equal(punchIn.Add(8*time.Hour)), "credited a standard work day")
	require.NotNil(t, closed.TotalHours)
	assert.Equal(t, "8.00", closed.TotalHours.StringFixed(2))
	assert.Equal(t, attendance.StatusOnTime, closed.Status)
}

func TestAutoCloseStaleAttendances_NothingStale(t *testing.T) {
	repo := &fakeAttendanceRepo{}

	err := testJobs(repo).AutoCloseStaleAttendances(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, repo.updated)
}

func TestAutoCloseStaleAttendances_ContinuesPastFailures(t *testing.T) {
	punchIn := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{
		stale: []attendance.Attendance{
			staleRecord("att-bad", punchIn),
			staleRecord("att-good", punchIn),
		},
		updateErrs: map[string]error{"att-bad": errors.New("deadlock detected")},
	}

	err := testJobs(repo).AutoCloseStaleAttendances(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "att-good", repo.updated[0].ID)
}

func TestAutoCloseStaleAttendances_LookupFailure(t *testing.T) {
	repo := &fakeAttendanceRepo{staleErr: errors.New("connection refused")}

	err := testJobs(repo).AutoCloseStaleAttendances(context.Background())
	assert.Error(t, err)
}
