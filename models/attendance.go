package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "present"
	StatusPartial = "partial"

	DayStatusInProgress = "In Progress"
	DayStatusComplete   = "Complete"
)

// AttendanceRecord is one check-in/check-out cycle. A user may own several
// records on the same date.
type AttendanceRecord struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       string             `json:"user_id" bson:"user_id"`
	EmployeeID   string             `json:"employee_id" bson:"employee_id"`
	Name         string             `json:"name" bson:"name"`
	Date         string             `json:"date" bson:"date"`
	CheckIn      time.Time          `json:"check_in" bson:"check_in"`
	CheckOut     *time.Time         `json:"check_out" bson:"check_out"`
	WorkingHours *int               `json:"working_hours" bson:"working_hours"`
	Status       string             `json:"status,omitempty" bson:"status,omitempty"`
	OpenKey      string             `json:"-" bson:"open_key,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// IsOpen reports whether the session still waits for its check-out.
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckOut == nil
}

// OpenSessionKey identifies the single open session a user may hold on a date.
func OpenSessionKey(userID, date string) string {
	return userID + "|" + date
}

// AttendanceView is an AttendanceRecord with its display strings.
type AttendanceView struct {
	AttendanceRecord
	CheckInDisplay      string `json:"check_in_display"`
	CheckOutDisplay     string `json:"check_out_display"`
	WorkingHoursDisplay string `json:"working_hours_display"`
	DateDisplay         string `json:"date_display"`
}

type TodayAttendanceResponse struct {
	Date        string          `json:"date"`
	IsCheckedIn bool            `json:"is_checked_in"`
	Record      *AttendanceView `json:"record"`
}

type AttendanceFilterQuery struct {
	EmployeeID string `query:"employee_id"`
	Date       string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Month      string `query:"month" validate:"omitempty,datetime=2006-01"`
}
