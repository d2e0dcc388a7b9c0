package models

// DailySnapshot is the admin dashboard view of one day.
type DailySnapshot struct {
	Date                   string `json:"date"`
	TotalEmployees         int    `json:"total_employees"`
	CheckedInToday         int    `json:"checked_in_today"`
	TotalHoursToday        int    `json:"total_hours_today"`
	TotalHoursTodayDisplay string `json:"total_hours_today_display"`
	PresentToday           int    `json:"present_today"`
	PartialToday           int    `json:"partial_today"`
	AbsentToday            int    `json:"absent_today"`
}

// MonthlySummary is the employee dashboard view of the current month.
type MonthlySummary struct {
	Month           string   `json:"month"`
	PresentDays     int      `json:"present_days"`
	LeavesThisMonth int      `json:"leaves_this_month"`
	LeaveDates      []string `json:"leave_dates"`
}

// EmployeeDay collects one employee's sessions on one date.
type EmployeeDay struct {
	EmployeeID          string             `json:"employee_id"`
	Name                string             `json:"name"`
	Records             []AttendanceRecord `json:"records"`
	TotalMinutes        int                `json:"total_minutes"`
	TotalMinutesDisplay string             `json:"total_minutes_display"`
	HasOpenSession      bool               `json:"has_open_session"`
	DayStatus           string             `json:"day_status"`
}

type DateGroup struct {
	Date      string        `json:"date"`
	Employees []EmployeeDay `json:"employees"`
}
