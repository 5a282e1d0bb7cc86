package service

import (
	"context"
	"math"
	"time"

	"multiweather/model"
)

// Service is the provider-agnostic weather contract. Every adapter is
// stateless: each call is one request/response round trip (two for
// GetWeatherByDate on non-today dates) and is safe for concurrent use.
type Service interface {
	// GetCurrentWeather returns the conditions right now, with an
	// hour-by-hour breakdown attached when the provider supplies one.
	GetCurrentWeather(ctx context.Context, lat, lon float64, opts Options) (*model.Weather, error)

	// GetForecast returns the day-by-day forecast for the location.
	GetForecast(ctx context.Context, lat, lon float64, opts Options) (*model.WeatherGroup, error)

	// GetWeatherByDate returns the reading for a single calendar date.
	// Today delegates to GetCurrentWeather; other dates are searched in
	// the forecast, and a date outside the forecast range yields a
	// placeholder carrying a warning alert instead of an error.
	GetWeatherByDate(ctx context.Context, lat, lon float64, date time.Time, opts Options) (*model.Weather, error)
}

// Options are the per-call knobs. The zero value means automatic units
// and English summaries.
type Options struct {
	Unit     model.Unit
	Language model.Language
}

// noForecastTitle is the alert title on the placeholder returned for a
// date outside the provider's forecast range. Kept for compatibility
// with the behavior callers already rely on.
const noForecastTitle = "NO AVAILABLE FORECAST FOR THE REQUESTED DATE"

// normalizeGroupTimes shifts each day's stored unix time by the group's
// declared offset so all times are consistently UTC-normalized. Applied
// only by adapters whose provider reports the offset in seconds.
// Offsets within 0.4h of GMT are left alone.
func normalizeGroupTimes(g *model.WeatherGroup) {
	if math.Abs(float64(g.TimeZoneOffset)) <= 0.4 {
		return
	}
	shift := int32(3600 * g.TimeZoneOffset)
	for _, w := range g.Data {
		w.UnixTime += shift
	}
}

// weatherByDate is the date dispatch shared by both adapters.
func weatherByDate(ctx context.Context, s Service, lat, lon float64, date time.Time, opts Options) (*model.Weather, error) {
	y, m, d := date.Date()
	ny, nm, nd := time.Now().UTC().Date()
	if y == ny && m == nm && d == nd {
		return s.GetCurrentWeather(ctx, lat, lon, opts)
	}

	group, err := s.GetForecast(ctx, lat, lon, opts)
	if err != nil {
		return nil, err
	}
	for _, w := range group.Data {
		if w.SunriseUnixTime == nil {
			continue
		}
		if model.LocalDayMatches(*w.SunriseUnixTime, group.TimeZoneOffset, y, m, d) {
			return w, nil
		}
	}
	return placeholderWeather(group, lat, lon, date), nil
}

// placeholderWeather synthesizes the "no forecast available" reading:
// the group's location stamp, the start of the requested date, and one
// warning alert. Never an error, so the call stays total.
func placeholderWeather(group *model.WeatherGroup, lat, lon float64, date time.Time) *model.Weather {
	coords := model.GeoCoordinates{Latitude: lat, Longitude: lon}
	var tz string
	var offset float32
	if group != nil {
		if (group.Coordinates != model.GeoCoordinates{}) {
			coords = group.Coordinates
		}
		tz = group.TimeZone
		offset = group.TimeZoneOffset
	}

	y, m, d := date.Date()
	start := model.UnixFromTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))

	return &model.Weather{
		Coordinates:    coords,
		TimeZone:       tz,
		TimeZoneOffset: offset,
		UnixTime:       start,
		Alerts: []model.Alert{{
			Title:           noForecastTitle,
			SeverityRaw:     model.SeverityWarning.String(),
			StartUnixTime:   start,
			ExpiresUnixTime: start + 24*3600,
		}},
	}
}
