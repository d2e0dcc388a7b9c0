package attendance

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

// DailySnapshot computes the organization view of a single day.
// records must all carry the same date.
func DailySnapshot(date string, totalEmployees int, records []models.AttendanceRecord) models.DailySnapshot {
	snap := models.DailySnapshot{Date: date, TotalEmployees: totalEmployees}

	checkedIn := make(map[string]struct{})
	for i := range records {
		rec := &records[i]
		checkedIn[rec.UserID] = struct{}{}
		snap.TotalHoursToday += closedMinutes(rec)

		// An open record has no classification yet, even if a legacy
		// document carries a provisional status.
		if rec.IsOpen() {
			continue
		}
		switch rec.Status {
		case models.StatusPresent:
			snap.PresentToday++
		case models.StatusPartial:
			snap.PartialToday++
		}
	}

	snap.CheckedInToday = len(checkedIn)
	snap.AbsentToday = totalEmployees - snap.CheckedInToday
	if snap.AbsentToday < 0 {
		snap.AbsentToday = 0
	}
	snap.TotalHoursTodayDisplay = util.FormatMinutes(snap.TotalHoursToday)
	return snap
}

// MonthlySummary computes a user's view of the month containing today.
// A present day is a date whose closed sessions add up to at least
// PresentThresholdMinutes; per-session status is not consulted.
// Records outside that month, or dated after today, are ignored.
// Leave days are inferred: every elapsed day of the month without a
// record counts, weekends and holidays included.
func MonthlySummary(records []models.AttendanceRecord, today time.Time) (models.MonthlySummary, error) {
	loc := today.Location()
	month := util.MonthKey(today, loc)
	todayKey := util.DateKey(today, loc)

	attended := make(map[string]struct{})
	minutesByDate := make(map[string]int)
	for i := range records {
		rec := &records[i]
		if len(rec.Date) < len(month) || rec.Date[:len(month)] != month || rec.Date > todayKey {
			continue
		}
		attended[rec.Date] = struct{}{}
		minutesByDate[rec.Date] += closedMinutes(rec)
	}

	summary := models.MonthlySummary{Month: month, LeaveDates: []string{}}
	for _, minutes := range minutesByDate {
		if minutes >= PresentThresholdMinutes {
			summary.PresentDays++
		}
	}

	elapsed, err := ElapsedDays(today)
	if err != nil {
		return models.MonthlySummary{}, err
	}
	for _, day := range elapsed {
		if _, ok := attended[day]; !ok {
			summary.LeaveDates = append(summary.LeaveDates, day)
		}
	}

	summary.LeavesThisMonth = len(elapsed) - len(attended)
	if summary.LeavesThisMonth < 0 {
		summary.LeavesThisMonth = 0
	}
	return summary, nil
}

// ElapsedDays lists the date keys from the first of today's month up to and
// including today.
func ElapsedDays(today time.Time) ([]string, error) {
	loc := today.Location()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	until := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   until,
	})
	if err != nil {
		return nil, fmt.Errorf("build daily rule: %w", err)
	}

	occurrences := rule.All()
	days := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, util.DateKey(occ, loc))
	}
	return days, nil
}
