package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwork-hq/timeclock-backend-go/internal/config"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// AttendanceJobs closes ledger records whose owner never punched out.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	cfg            config.ClockConfig
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, cfg config.ClockConfig) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
}

// AutoCloseStaleAttendances punches out records left open for more than
// the configured number of days. A forgotten punch-out is credited with a
// standard work day; the admin listing still shows the auto-closed record
// for correction.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	cutoff := time.Now().In(j.cfg.Location).
		AddDate(0, 0, -j.cfg.AutoCloseAfter).
		Format("2006-01-02")

	staleRecords, err := j.attendanceRepo.GetStaleOpenRecords(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale open records: %w", err)
	}

	if len(staleRecords) == 0 {
		return nil
	}

	closedCount := 0
	for _, record := range staleRecords {
		punchOut := record.PunchIn.Add(time.Duration(j.cfg.StandardWorkHours) * time.Hour)
		totalHours := decimal.NewFromInt(int64(j.cfg.StandardWorkHours)).Round(2)

		record.PunchOut = &punchOut
		record.TotalHours = &totalHours
		record.Status = attendance.ClassifyStatus(totalHours, j.cfg.StandardWorkHours)

		if err := j.attendanceRepo.Update(ctx, record); err != nil {
			slog.Error("Cron: failed to auto-close attendance",
				"attendance_id", record.ID,
				"employee_id", record.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: auto-closed stale attendances", "count", closedCount)
	return nil
}
