package util

import (
	"fmt"
	"strings"
	"time"
)

const ClockPlaceholder = "--:--"

// FormatClockTime renders t as a 12-hour en-US clock time, e.g. "09:05 AM".
func FormatClockTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ClockPlaceholder
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("03:04 PM")
}

func FormatDuration(minutes *int) string {
	if minutes == nil {
		return FormatMinutes(0)
	}
	return FormatMinutes(*minutes)
}

func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0h 0m"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatDisplayDate turns YYYY-MM-DD into DD/MM/YYYY. Anything else is returned as is.
func FormatDisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
