package schedule

import (
	"fmt"
	"time"
)

// vi calendar names, as the vi-VN long date format renders them
var viWeekdays = [...]string{
	time.Sunday:    "Chủ Nhật",
	time.Monday:    "Thứ Hai",
	time.Tuesday:   "Thứ Ba",
	time.Wednesday: "Thứ Tư",
	time.Thursday:  "Thứ Năm",
	time.Friday:    "Thứ Sáu",
	time.Saturday:  "Thứ Bảy",
}

// FormatDate renders an upstream session date as the long Vietnamese
// form, e.g. "2024-05-12" -> "Chủ Nhật, 12 tháng 5, 2024". Unparseable
// input passes through verbatim.
func FormatDate(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d tháng %d, %d",
		viWeekdays[day.Weekday()], day.Day(), int(day.Month()), day.Year())
}

// FormatTime trims an upstream HH:MM:SS time to HH:MM.
func FormatTime(timeString string) string {
	if len(timeString) < 5 {
		return timeString
	}
	return timeString[:5]
}
