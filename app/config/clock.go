package config

import "github.com/sumanth2354/ITAttendance/app/clock"

var appClock *clock.Clock

// GetClock returns the department clock built from the configured timezone
// offset and shift minutes.
func GetClock() *clock.Clock {
	if appClock == nil {
		appClock = clock.New(AppConfig.TimezoneOffsetMinutes, AppConfig.ClockShiftMinutes)
	}
	return appClock
}
