package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-attendance/models"
)

var base = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func closed(userID, empID, date string, checkIn time.Time, minutes int) models.AttendanceRecord {
	rec := open(userID, empID, date, checkIn)
	Close(&rec, checkIn.Add(time.Duration(minutes)*time.Minute))
	return rec
}

func open(userID, empID, date string, checkIn time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		UserID:     userID,
		EmployeeID: empID,
		Name:       "Employee " + empID,
		Date:       date,
		CheckIn:    checkIn,
		OpenKey:    models.OpenSessionKey(userID, date),
	}
}

func TestElapsedMinutes(t *testing.T) {
	assert.Equal(t, 90, ElapsedMinutes(base, base.Add(90*time.Minute)))
	assert.Equal(t, 1, ElapsedMinutes(base, base.Add(30*time.Second)))
	assert.Equal(t, 0, ElapsedMinutes(base, base.Add(29*time.Second)))
	assert.Equal(t, 0, ElapsedMinutes(base, base.Add(-time.Hour)))
}

func TestCloseClassifiesSession(t *testing.T) {
	rec := open("u1", "E1", "2026-03-10", base)
	Close(&rec, base.Add(90*time.Minute))

	require.NotNil(t, rec.CheckOut)
	require.NotNil(t, rec.WorkingHours)
	assert.Equal(t, 90, *rec.WorkingHours)
	assert.Equal(t, models.StatusPartial, rec.Status)
	assert.Empty(t, rec.OpenKey)

	rec = open("u1", "E1", "2026-03-10", base)
	Close(&rec, base.Add(500*time.Minute))
	assert.Equal(t, models.StatusPresent, rec.Status)

	assert.Equal(t, models.StatusPresent, Classify(480))
	assert.Equal(t, models.StatusPartial, Classify(479))
}

func TestDeriveDay(t *testing.T) {
	records := []models.AttendanceRecord{
		open("u1", "E1", "2026-03-10", base.Add(5*time.Hour)),
		closed("u1", "E1", "2026-03-10", base, 120),
		closed("u1", "E1", "2026-03-10", base.Add(3*time.Hour), 60),
	}

	day := DeriveDay(records)
	assert.Equal(t, 180, day.TotalMinutes)
	assert.True(t, day.HasOpenSession)
	assert.Equal(t, models.DayStatusInProgress, day.DayStatus)

	day = DeriveDay(records[1:])
	assert.False(t, day.HasOpenSession)
	assert.Equal(t, models.DayStatusComplete, day.DayStatus)
}

func TestDailySnapshot(t *testing.T) {
	records := []models.AttendanceRecord{
		closed("A", "E-A", "2026-03-10", base, 500),
		open("B", "E-B", "2026-03-10", base),
	}

	snap := DailySnapshot("2026-03-10", 3, records)
	assert.Equal(t, 3, snap.TotalEmployees)
	assert.Equal(t, 2, snap.CheckedInToday)
	assert.Equal(t, 1, snap.PresentToday)
	assert.Equal(t, 0, snap.PartialToday)
	assert.Equal(t, 1, snap.AbsentToday)
	assert.Equal(t, 500, snap.TotalHoursToday)
	assert.Equal(t, "8h 20m", snap.TotalHoursTodayDisplay)

	assert.Equal(t, snap, DailySnapshot("2026-03-10", 3, records), "same input must give same output")
}

func TestDailySnapshotIgnoresProvisionalStatusAndClampsAbsent(t *testing.T) {
	legacy := open("B", "E-B", "2026-03-10", base)
	legacy.Status = models.StatusPresent

	records := []models.AttendanceRecord{
		legacy,
		closed("B", "E-B", "2026-03-10", base, 30),
		closed("C", "E-C", "2026-03-10", base, 30),
	}

	snap := DailySnapshot("2026-03-10", 1, records)
	assert.Equal(t, 2, snap.CheckedInToday)
	assert.Equal(t, 0, snap.PresentToday)
	assert.Equal(t, 2, snap.PartialToday)
	assert.Equal(t, 0, snap.AbsentToday)
}

func TestMonthlySummary(t *testing.T) {
	today := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		// Two half sessions that together reach the threshold.
		closed("u1", "E1", "2026-03-01", base, 240),
		closed("u1", "E1", "2026-03-01", base.Add(5*time.Hour), 240),
		closed("u1", "E1", "2026-03-02", base, 100),
		open("u1", "E1", "2026-03-04", base),
		// Outside the month.
		closed("u1", "E1", "2026-02-28", base, 600),
	}

	summary, err := MonthlySummary(records, today)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", summary.Month)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 2, summary.LeavesThisMonth)
	assert.Equal(t, []string{"2026-03-03", "2026-03-05"}, summary.LeaveDates)

	again, err := MonthlySummary(records, today)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestMonthlySummaryFirstDayWithoutRecords(t *testing.T) {
	summary, err := MonthlySummary(nil, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 1, summary.LeavesThisMonth)
	assert.Equal(t, []string{"2026-04-01"}, summary.LeaveDates)
}

func TestElapsedDays(t *testing.T) {
	days, err := ElapsedDays(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0])
	assert.Equal(t, "2024-02-29", days[28])
}

func TestGroupMergesSameEmployeeDay(t *testing.T) {
	later := closed("u1", "EMP-1", "2026-03-10", base.Add(4*time.Hour), 60)
	openLater := open("u1", "EMP-1", "2026-03-10", base.Add(6*time.Hour))
	earlier := closed("u1", "EMP-1", "2026-03-10", base, 90)
	other := closed("u2", "EMP-2", "2026-03-10", base.Add(time.Hour), 30)
	prevDay := closed("u1", "EMP-1", "2026-03-09", base, 480)

	// Input is ordered as the store returns it: date desc, check-in desc.
	groups := Group([]models.AttendanceRecord{openLater, later, other, earlier, prevDay}, Filter{})
	require.Len(t, groups, 2)
	assert.Equal(t, "2026-03-10", groups[0].Date)
	assert.Equal(t, "2026-03-09", groups[1].Date)

	require.Len(t, groups[0].Employees, 2)
	emp := groups[0].Employees[0]
	assert.Equal(t, "EMP-1", emp.EmployeeID)
	require.Len(t, emp.Records, 3)
	assert.Equal(t, openLater.CheckIn, emp.Records[0].CheckIn)
	assert.Equal(t, later.CheckIn, emp.Records[1].CheckIn)
	assert.Equal(t, earlier.CheckIn, emp.Records[2].CheckIn)
	assert.Equal(t, 150, emp.TotalMinutes)
	assert.Equal(t, "2h 30m", emp.TotalMinutesDisplay)
	assert.Equal(t, models.DayStatusInProgress, emp.DayStatus)

	assert.Equal(t, models.DayStatusComplete, groups[1].Employees[0].DayStatus)
}

func TestGroupSortsDatesDescendingAcrossYears(t *testing.T) {
	records := []models.AttendanceRecord{
		closed("u1", "E1", "2025-12-31", base, 10),
		closed("u1", "E1", "2026-01-02", base, 10),
		closed("u1", "E1", "2026-01-01", base, 10),
	}
	groups := Group(records, Filter{})
	require.Len(t, groups, 3)
	assert.Equal(t, "2026-01-02", groups[0].Date)
	assert.Equal(t, "2026-01-01", groups[1].Date)
	assert.Equal(t, "2025-12-31", groups[2].Date)
}

func TestGroupFiltersIntersect(t *testing.T) {
	records := []models.AttendanceRecord{
		closed("u1", "EMP-ALPHA", "2026-03-10", base, 10),
		closed("u2", "EMP-BETA", "2026-03-10", base, 10),
		closed("u1", "EMP-ALPHA", "2026-02-10", base, 10),
		closed("u2", "EMP-BETA", "2026-02-11", base, 10),
	}

	byEmployee := Group(records, Filter{EmployeeID: "alpha"})
	assert.Len(t, byEmployee, 2)

	byMonth := Group(records, Filter{Month: "2026-03"})
	require.Len(t, byMonth, 1)
	assert.Len(t, byMonth[0].Employees, 2)

	both := Group(records, Filter{EmployeeID: "alpha", Month: "2026-03"})
	require.Len(t, both, 1)
	assert.Equal(t, "2026-03-10", both[0].Date)
	require.Len(t, both[0].Employees, 1)
	assert.Equal(t, "EMP-ALPHA", both[0].Employees[0].EmployeeID)

	byDate := Group(records, Filter{Date: "2026-02-11"})
	require.Len(t, byDate, 1)
	assert.Equal(t, "EMP-BETA", byDate[0].Employees[0].EmployeeID)

	assert.Empty(t, Group(records, Filter{EmployeeID: "gamma"}))
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, Filter{Date: "2026-03-10", Month: "2026-03"}.Validate())

	err := Filter{Date: "10-03-2026"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))

	assert.Error(t, Filter{Month: "2026-13"}.Validate())
}

func TestFilterDateRange(t *testing.T) {
	from, to := Filter{Date: "2026-03-10"}.DateRange()
	assert.Equal(t, "2026-03-10", from)
	assert.Equal(t, "2026-03-10", to)

	from, to = Filter{Month: "2026-02"}.DateRange()
	assert.Equal(t, "2026-02-01", from)
	assert.Equal(t, "2026-02-31", to)

	from, to = Filter{EmployeeID: "x"}.DateRange()
	assert.Empty(t, from)
	assert.Empty(t, to)
}
