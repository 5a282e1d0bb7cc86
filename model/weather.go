package model

import "time"

// Weather is one normalized reading: the conditions at a particular
// location for a single instant or day. Instants are stored only as
// unix seconds; Time, SunriseTime and SunsetTime are derived from them,
// so a serialization round trip preserves the unix fields exactly and
// the derived instants recompute identically.
type Weather struct {
	Coordinates GeoCoordinates `json:"coordinates"`
	// TimeZone is the IANA time zone name of the location.
	TimeZone string `json:"timezone,omitempty"`
	// TimeZoneOffset in hours from GMT.
	TimeZoneOffset float32 `json:"timezone_offset,omitempty"`

	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`

	// Visibility is nil on daily data points.
	Visibility *float32 `json:"visibility,omitempty"`

	Wind   Wind    `json:"wind"`
	Alerts []Alert `json:"alerts,omitempty"`

	Temperature         Temperature `json:"temperature"`
	ApparentTemperature Temperature `json:"apparent_temperature"`

	// UnixTime is the time of this data point (unix, UTC).
	UnixTime        int32  `json:"time"`
	SunriseUnixTime *int32 `json:"sunrise,omitempty"`
	SunsetUnixTime  *int32 `json:"sunset,omitempty"`

	UVIndex         *float32 `json:"uv_index,omitempty"`
	UVIndexUnixTime *int32   `json:"uv_index_time,omitempty"`

	ApparentTemperatureHighUnixTime *int32 `json:"apparent_temperature_high_time,omitempty"`
	ApparentTemperatureLowUnixTime  *int32 `json:"apparent_temperature_low_time,omitempty"`

	PrecipIntensity            *float32 `json:"precip_intensity,omitempty"`
	PrecipProbability          *float32 `json:"precip_probability,omitempty"`
	PrecipType                 string   `json:"precip_type,omitempty"`
	PrecipIntensityMax         *float32 `json:"precip_intensity_max,omitempty"`
	PrecipIntensityMaxUnixTime *int32   `json:"precip_intensity_max_time,omitempty"`

	// Snow and Rain volumes, where available (mm by default).
	Snow *float32 `json:"snow,omitempty"`
	Rain *float32 `json:"rain,omitempty"`

	// Cloudness is the cloud cover percentage (0-100).
	Cloudness *int32 `json:"clouds,omitempty"`

	// Hourly breakdown, populated only on "current weather" results.
	Hourly *WeatherGroup `json:"hourly,omitempty"`
}

// Time of this data point (UTC), derived from UnixTime.
func (w *Weather) Time() time.Time {
	return TimeFromUnix(w.UnixTime)
}

// SetTime stores t as unix seconds.
func (w *Weather) SetTime(t time.Time) {
	w.UnixTime = UnixFromTime(t)
}

// SunriseTime derived from SunriseUnixTime; ok is false when the
// provider did not report a sunrise (hourly points never have one).
func (w *Weather) SunriseTime() (t time.Time, ok bool) {
	if w.SunriseUnixTime == nil {
		return time.Time{}, false
	}
	return TimeFromUnix(*w.SunriseUnixTime), true
}

// SunsetTime derived from SunsetUnixTime.
func (w *Weather) SunsetTime() (t time.Time, ok bool) {
	if w.SunsetUnixTime == nil {
		return time.Time{}, false
	}
	return TimeFromUnix(*w.SunsetUnixTime), true
}
