package utils

import "time"

// ParseRange reads optional RFC3339 start/end query values. A missing bound
// stays the zero value, which the repositories treat as unbounded, so history
// keeps future-dated rows visible.
func ParseRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time

	if startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t.UTC()
	}
	if endStr != "" {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t.UTC()
	}
	return start, end, nil
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
