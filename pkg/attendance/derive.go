// Package attendance turns check-in/check-out records into per-session
// classifications, per-day states and aggregate statistics. Every function
// here is pure: it reads its arguments and the records it is handed, nothing else.
package attendance

import (
	"math"
	"time"

	"employee-attendance/models"
)

// PresentThresholdMinutes is the length of a full working session.
const PresentThresholdMinutes = 480

// ElapsedMinutes rounds the span between check-in and check-out to whole
// minutes, never going below zero.
func ElapsedMinutes(checkIn, checkOut time.Time) int {
	minutes := math.Round(checkOut.Sub(checkIn).Minutes())
	if minutes < 0 {
		return 0
	}
	return int(minutes)
}

func Classify(minutes int) string {
	if minutes >= PresentThresholdMinutes {
		return models.StatusPresent
	}
	return models.StatusPartial
}

// Close marks rec as checked out at now.
func Close(rec *models.AttendanceRecord, now time.Time) {
	minutes := ElapsedMinutes(rec.CheckIn, now)
	checkOut := now
	rec.CheckOut = &checkOut
	rec.WorkingHours = &minutes
	rec.Status = Classify(minutes)
	rec.OpenKey = ""
}

// DaySummary answers whether a day's attendance is fully recorded.
type DaySummary struct {
	TotalMinutes   int
	HasOpenSession bool
	DayStatus      string
}

// DeriveDay folds the records sharing one (user, date) key.
func DeriveDay(records []models.AttendanceRecord) DaySummary {
	var s DaySummary
	for i := range records {
		if records[i].IsOpen() {
			s.HasOpenSession = true
			continue
		}
		s.TotalMinutes += closedMinutes(&records[i])
	}

	s.DayStatus = models.DayStatusComplete
	if s.HasOpenSession {
		s.DayStatus = models.DayStatusInProgress
	}
	return s
}

func closedMinutes(rec *models.AttendanceRecord) int {
	if rec.IsOpen() || rec.WorkingHours == nil {
		return 0
	}
	return *rec.WorkingHours
}
