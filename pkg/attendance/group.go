package attendance

import (
	"sort"
	"strings"
	"time"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

// Filter narrows the cross-employee grouping. Empty fields match everything;
// set fields are combined with AND.
type Filter struct {
	EmployeeID string
	Date       string
	Month      string
}

// Validate checks the date and month formats before any query is issued.
func (f Filter) Validate() error {
	var fields []*models.FieldError
	if f.Date != "" {
		if _, err := time.Parse(util.DateLayout, f.Date); err != nil {
			fields = append(fields, &models.FieldError{Field: "date", Tag: "datetime", Msg: "Date must use the YYYY-MM-DD format."})
		}
	}
	if f.Month != "" {
		if _, err := time.Parse(util.MonthLayout, f.Month); err != nil {
			fields = append(fields, &models.FieldError{Field: "month", Tag: "datetime", Msg: "Month must use the YYYY-MM format."})
		}
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// DateRange returns the narrowest [from, to] date-key range implied by the
// filter, or empty strings when it is unbounded.
func (f Filter) DateRange() (string, string) {
	if f.Date != "" {
		return f.Date, f.Date
	}
	if f.Month != "" {
		return f.Month + "-01", f.Month + "-31"
	}
	return "", ""
}

func (f Filter) matchRecord(rec *models.AttendanceRecord) bool {
	if f.Date != "" && rec.Date != f.Date {
		return false
	}
	if f.Month != "" && !strings.HasPrefix(rec.Date, f.Month+"-") {
		return false
	}
	if f.EmployeeID != "" && !strings.Contains(strings.ToLower(rec.EmployeeID), strings.ToLower(f.EmployeeID)) {
		return false
	}
	return true
}

// SortKey turns YYYY-MM-DD into YYYYMMDD, which orders lexicographically.
func SortKey(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// Group buckets records by date, then by employee code. Employees keep the
// order in which they first appear in records, and each employee keeps its
// records in input order, so feeding records sorted by check-in descending
// yields check-in-descending sessions. Date groups are sorted newest first.
func Group(records []models.AttendanceRecord, f Filter) []models.DateGroup {
	type bucket struct {
		group *models.DateGroup
		index map[string]int
	}

	buckets := make(map[string]*bucket)
	var order []string

	for i := range records {
		rec := records[i]
		if !f.matchRecord(&rec) {
			continue
		}

		b, ok := buckets[rec.Date]
		if !ok {
			b = &bucket{group: &models.DateGroup{Date: rec.Date}, index: make(map[string]int)}
			buckets[rec.Date] = b
			order = append(order, rec.Date)
		}

		idx, ok := b.index[rec.EmployeeID]
		if !ok {
			b.group.Employees = append(b.group.Employees, models.EmployeeDay{EmployeeID: rec.EmployeeID, Name: rec.Name})
			idx = len(b.group.Employees) - 1
			b.index[rec.EmployeeID] = idx
		}
		b.group.Employees[idx].Records = append(b.group.Employees[idx].Records, rec)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return SortKey(order[i]) > SortKey(order[j])
	})

	groups := make([]models.DateGroup, 0, len(order))
	for _, date := range order {
		g := buckets[date].group
		for i := range g.Employees {
			day := DeriveDay(g.Employees[i].Records)
			g.Employees[i].TotalMinutes = day.TotalMinutes
			g.Employees[i].TotalMinutesDisplay = util.FormatMinutes(day.TotalMinutes)
			g.Employees[i].HasOpenSession = day.HasOpenSession
			g.Employees[i].DayStatus = day.DayStatus
		}
		groups = append(groups, *g)
	}
	return groups
}
