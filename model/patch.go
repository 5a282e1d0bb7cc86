package model

// PatchSameDay back-fills nil fields on a "current" reading from the
// daily summary covering the same calendar day. Providers populate
// sunrise/sunset, min/max temperatures and precipitation stats only on
// daily entries, so a freshly mapped current reading has holes this
// closes. A field already present is never overwritten, which also
// makes the patch idempotent.
//
// The matching daily entry is the first whose sunrise time falls on the
// same provider-local calendar date as the current reading. When no
// entry has a sunrise time, or none matches, currently is returned
// unchanged.
func PatchSameDay(currently *Weather, daily []*Weather) {
	if currently == nil {
		return
	}
	sameDay := findSameDay(currently, daily)
	if sameDay == nil {
		return
	}

	if currently.SunriseUnixTime == nil {
		currently.SunriseUnixTime = sameDay.SunriseUnixTime
	}
	if currently.SunsetUnixTime == nil {
		currently.SunsetUnixTime = sameDay.SunsetUnixTime
	}
	if currently.UVIndexUnixTime == nil {
		currently.UVIndexUnixTime = sameDay.UVIndexUnixTime
	}
	if currently.ApparentTemperatureHighUnixTime == nil {
		currently.ApparentTemperatureHighUnixTime = sameDay.ApparentTemperatureHighUnixTime
	}
	if currently.ApparentTemperatureLowUnixTime == nil {
		currently.ApparentTemperatureLowUnixTime = sameDay.ApparentTemperatureLowUnixTime
	}
	if currently.PrecipIntensity == nil {
		currently.PrecipIntensity = sameDay.PrecipIntensity
	}
	if currently.PrecipProbability == nil {
		currently.PrecipProbability = sameDay.PrecipProbability
	}
	if currently.PrecipType == "" {
		currently.PrecipType = sameDay.PrecipType
	}
	if currently.PrecipIntensityMax == nil {
		currently.PrecipIntensityMax = sameDay.PrecipIntensityMax
	}
	if currently.PrecipIntensityMaxUnixTime == nil {
		currently.PrecipIntensityMaxUnixTime = sameDay.PrecipIntensityMaxUnixTime
	}

	// Each temperature set is filled strictly from its own counterpart;
	// apparent values are never borrowed from the real daily readings.
	patchTemperature(&currently.Temperature, sameDay.Temperature)
	patchTemperature(&currently.ApparentTemperature, sameDay.ApparentTemperature)
}

func findSameDay(currently *Weather, daily []*Weather) *Weather {
	for _, d := range daily {
		if d == nil || d.SunriseUnixTime == nil {
			continue
		}
		if SameLocalDay(*d.SunriseUnixTime, currently.UnixTime, currently.TimeZoneOffset) {
			return d
		}
	}
	return nil
}

func patchTemperature(dst *Temperature, src Temperature) {
	if dst.Daily == nil {
		dst.Daily = src.Daily
	}
	if dst.Morning == nil {
		dst.Morning = src.Morning
	}
	if dst.Evening == nil {
		dst.Evening = src.Evening
	}
	if dst.Night == nil {
		dst.Night = src.Night
	}
	if dst.Min == nil {
		dst.Min = src.Min
	}
	if dst.Max == nil {
		dst.Max = src.Max
	}
	if dst.DewPoint == nil {
		dst.DewPoint = src.DewPoint
	}
	if dst.Humidity == nil {
		dst.Humidity = src.Humidity
	}
	if dst.Pressure == nil {
		dst.Pressure = src.Pressure
	}
}
