package store

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the only accepted wire form for calendar dates.
const DateLayout = "2006-01-02"

func parseDate(field, value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date{}, invalid(field, "is required")
	}

	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return datatypes.Date{}, invalid(field, "must be a date formatted as YYYY-MM-DD")
	}

	return datatypes.Date(t), nil
}

// FormatDate renders d in DateLayout.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func dateBefore(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}
