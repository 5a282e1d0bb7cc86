package service

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"multiweather/darksky"
	"multiweather/model"
)

// darkSkyService adapts the raw Dark-Sky client to the common contract:
// fetch, map, patch, assemble.
type darkSkyService struct {
	client *darksky.Client
	log    *logrus.Entry
}

// NewDarkSky builds the Dark-Sky adapter. hc may be nil; passing one
// injects a transport for testing.
func NewDarkSky(apiKey string, hc *http.Client) Service {
	return &darkSkyService{
		client: darksky.NewClient(apiKey, hc),
		log:    logrus.WithField("provider", "darksky"),
	}
}

func (s *darkSkyService) GetCurrentWeather(ctx context.Context, lat, lon float64, opts Options) (*model.Weather, error) {
	raw, err := s.client.Forecast(ctx, lat, lon,
		[]string{darksky.ExcludeDaily, darksky.ExcludeMinutely},
		opts.Unit, opts.Language)
	if err != nil {
		return nil, err
	}

	out, err := darksky.ToCurrentWeather(raw)
	if err != nil {
		return nil, err
	}

	// The daily block is normally excluded from this request, but when
	// the provider returns one anyway use it to fill the holes in the
	// current reading.
	if raw.Daily != nil && len(raw.Daily.Data) > 0 {
		dailyGroup, err := darksky.ToWeatherGroup(raw)
		if err != nil {
			return nil, err
		}
		model.PatchSameDay(out, dailyGroup.Data)
	}

	if raw.Hourly != nil && len(raw.Hourly.Data) > 0 {
		hourly, err := darksky.HourlyGroup(raw)
		if err != nil {
			return nil, err
		}
		out.Hourly = hourly
	}

	s.log.WithField("hours", hourlyCount(out)).Debug("mapped current weather")
	return out, nil
}

func (s *darkSkyService) GetForecast(ctx context.Context, lat, lon float64, opts Options) (*model.WeatherGroup, error) {
	raw, err := s.client.Forecast(ctx, lat, lon,
		[]string{darksky.ExcludeMinutely},
		opts.Unit, opts.Language)
	if err != nil {
		return nil, err
	}

	// This provider reports its offset in hours and stamps days in UTC
	// already, so no time normalization is needed here.
	group, err := darksky.ToWeatherGroup(raw)
	if err != nil {
		return nil, err
	}

	s.log.WithField("days", group.Len()).Debug("mapped forecast")
	return group, nil
}

func (s *darkSkyService) GetWeatherByDate(ctx context.Context, lat, lon float64, date time.Time, opts Options) (*model.Weather, error) {
	return weatherByDate(ctx, s, lat, lon, date, opts)
}

func hourlyCount(w *model.Weather) int {
	if w.Hourly == nil {
		return 0
	}
	return w.Hourly.Len()
}
