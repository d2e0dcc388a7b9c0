// Package export renders grouped attendance into spreadsheet workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

const (
	SessionsSheet = "Sessions"
	DailySheet    = "Daily Totals"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	sessionHeader = []interface{}{"Date", "Employee ID", "Name", "Check In", "Check Out", "Working Hours", "Status"}
	dailyHeader   = []interface{}{"Date", "Employee ID", "Name", "Sessions", "Total Minutes", "Total", "Day Status"}
)

// AttendanceWorkbook writes one row per session and one row per employee-day,
// in the order of groups. Times are shown in loc.
func AttendanceWorkbook(groups []models.DateGroup, loc *time.Location) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SessionsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DailySheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for _, sheet := range []struct {
		name   string
		header []interface{}
	}{{SessionsSheet, sessionHeader}, {DailySheet, dailyHeader}} {
		if err := writeRow(f, sheet.name, 1, sheet.header); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(sheet.name, 1, 1, headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		if err := f.SetColWidth(sheet.name, "A", "G", 16); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	sessionRow, dailyRow := 2, 2
	for _, g := range groups {
		for _, emp := range g.Employees {
			for i := range emp.Records {
				rec := &emp.Records[i]
				row := []interface{}{
					g.Date,
					emp.EmployeeID,
					emp.Name,
					util.FormatClockTime(&rec.CheckIn, loc),
					util.FormatClockTime(rec.CheckOut, loc),
					util.FormatDuration(rec.WorkingHours),
					rec.Status,
				}
				if err := writeRow(f, SessionsSheet, sessionRow, row); err != nil {
					return nil, err
				}
				sessionRow++
			}

			row := []interface{}{
				g.Date,
				emp.EmployeeID,
				emp.Name,
				len(emp.Records),
				emp.TotalMinutes,
				emp.TotalMinutesDisplay,
				emp.DayStatus,
			}
			if err := writeRow(f, DailySheet, dailyRow, row); err != nil {
				return nil, err
			}
			dailyRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
