package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"time"
)

// ParseDate accepts a plain calendar date or a full RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constvars.InputDateLayout, value)
	if err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

func ParseSchedule(value string) (time.Time, error) {
	schedule, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.UTC(), nil
}

func FormatDateTime(t time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return t.In(location).Format(constvars.DisplayDateTimeLayout)
}
