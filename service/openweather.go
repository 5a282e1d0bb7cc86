package service

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"multiweather/model"
	"multiweather/openweather"
)

// openWeatherService adapts the raw OpenWeather one-call client to the
// common contract. The provider reports current, hourly and daily data
// in a single payload, so every operation is one fetch.
type openWeatherService struct {
	client *openweather.Client
	log    *logrus.Entry
}

// NewOpenWeather builds the OpenWeather adapter. hc may be nil; passing
// one injects a transport for testing.
func NewOpenWeather(apiKey string, hc *http.Client) Service {
	return &openWeatherService{
		client: openweather.NewClient(apiKey, hc),
		log:    logrus.WithField("provider", "openweathermap"),
	}
}

func (s *openWeatherService) GetCurrentWeather(ctx context.Context, lat, lon float64, opts Options) (*model.Weather, error) {
	raw, err := s.client.OneCall(ctx, lat, lon, opts.Unit, opts.Language)
	if err != nil {
		return nil, err
	}

	out, err := openweather.ToCurrentWeather(raw)
	if err != nil {
		return nil, err
	}

	// The current reading only carries a bare temperature; borrow the
	// daily summary of the same day for min/max and the rest.
	if len(raw.Daily) > 0 {
		dailyGroup, err := openweather.ToWeatherGroup(raw)
		if err != nil {
			return nil, err
		}
		model.PatchSameDay(out, dailyGroup.Data)
	}

	if len(raw.Hourly) > 0 {
		hourly, err := openweather.HourlyGroup(raw)
		if err != nil {
			return nil, err
		}
		out.Hourly = hourly
	}

	s.log.WithField("hours", hourlyCount(out)).Debug("mapped current weather")
	return out, nil
}

func (s *openWeatherService) GetForecast(ctx context.Context, lat, lon float64, opts Options) (*model.WeatherGroup, error) {
	raw, err := s.client.OneCall(ctx, lat, lon, opts.Unit, opts.Language)
	if err != nil {
		return nil, err
	}

	group, err := openweather.ToWeatherGroup(raw)
	if err != nil {
		return nil, err
	}
	normalizeGroupTimes(group)

	s.log.WithField("days", group.Len()).Debug("mapped forecast")
	return group, nil
}

func (s *openWeatherService) GetWeatherByDate(ctx context.Context, lat, lon float64, date time.Time, opts Options) (*model.Weather, error) {
	return weatherByDate(ctx, s, lat, lon, date, opts)
}
