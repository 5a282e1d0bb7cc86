package model

import (
	"math"
	"time"
)

// TimeFromUnix converts unix seconds to a UTC instant. No time zone is
// applied; the inverse is UnixFromTime.
func TimeFromUnix(unix int32) time.Time {
	return time.Unix(int64(unix), 0).UTC()
}

// UnixFromTime converts an instant to unix seconds.
func UnixFromTime(t time.Time) int32 {
	return int32(t.Unix())
}

// HoursFromSeconds converts a time zone offset expressed in seconds from
// GMT to hours, rounded to one decimal. Providers that already report
// hours do not go through this conversion.
func HoursFromSeconds(seconds int32) float32 {
	return float32(math.Round(float64(seconds)/3600.0*10) / 10)
}

// HumidityToPercent converts a humidity fraction in [0,1] to an integer
// percentage. The multiplication stays in float32 so that values such as
// 0.755 land exactly on the .5 boundary and round up, matching the
// provider's own arithmetic. Lossy and one-directional.
func HumidityToPercent(fraction float32) int32 {
	return int32(math.Round(float64(fraction * 100)))
}

// SameLocalDay reports whether the two unix instants fall on the same
// calendar date once shifted by offsetHours. Calendar matching is done
// in provider-local time, not by UTC truncation.
func SameLocalDay(a, b int32, offsetHours float32) bool {
	shift := time.Duration(float64(offsetHours) * float64(time.Hour))
	ay, am, ad := TimeFromUnix(a).Add(shift).Date()
	by, bm, bd := TimeFromUnix(b).Add(shift).Date()
	return ay == by && am == bm && ad == bd
}

// LocalDayMatches reports whether the unix instant, shifted by
// offsetHours, falls on the given calendar date.
func LocalDayMatches(unix int32, offsetHours float32, year int, month time.Month, day int) bool {
	shift := time.Duration(float64(offsetHours) * float64(time.Hour))
	y, m, d := TimeFromUnix(unix).Add(shift).Date()
	return y == year && m == month && d == day
}
