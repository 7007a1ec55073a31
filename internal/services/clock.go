package services

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time in Location, or local time when Location is nil.
type SystemClock struct {
	Location *time.Location
}

func (clock SystemClock) Now() time.Time {
	now := time.Now()
	if clock.Location != nil {
		return now.In(clock.Location)
	}
	return now
}
