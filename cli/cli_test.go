package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/tj/assert"

	"multiweather/model"
	"multiweather/service"
)

type fakeService struct {
	current  *model.Weather
	forecast *model.WeatherGroup
	byDate   *model.Weather

	gotOpts service.Options
	gotLat  float64
	gotLon  float64
	gotDate time.Time
}

func (f *fakeService) GetCurrentWeather(ctx context.Context, lat, lon float64, opts service.Options) (*model.Weather, error) {
	f.gotLat, f.gotLon, f.gotOpts = lat, lon, opts
	return f.current, nil
}

func (f *fakeService) GetForecast(ctx context.Context, lat, lon float64, opts service.Options) (*model.WeatherGroup, error) {
	f.gotLat, f.gotLon, f.gotOpts = lat, lon, opts
	return f.forecast, nil
}

func (f *fakeService) GetWeatherByDate(ctx context.Context, lat, lon float64, date time.Time, opts service.Options) (*model.Weather, error) {
	f.gotLat, f.gotLon, f.gotDate, f.gotOpts = lat, lon, date, opts
	return f.byDate, nil
}

func f32(v float32) *float32 { return &v }

func sampleWeather() *model.Weather {
	return &model.Weather{
		Coordinates:         model.GeoCoordinates{Latitude: 45.46, Longitude: 9.19},
		TimeZone:            "Europe/Rome",
		Summary:             "Partly cloudy",
		Temperature:         model.Temperature{Daily: f32(21.5)},
		ApparentTemperature: model.Temperature{Daily: f32(20)},
		UnixTime:            1623754800,
	}
}

func run(t *testing.T, fake *fakeService, args ...string) string {
	t.Helper()
	factory := func(id service.ID) (service.Service, error) { return fake, nil }
	cmd, err := New(factory, nil)
	assert.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	assert.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCurrentCommand(t *testing.T) {
	fake := &fakeService{current: sampleWeather()}
	out := run(t, fake, "current", "--lat", "45.46", "--lon", "9.19", "--units", "si", "--lang", "it")

	assert.Equal(t, 45.46, fake.gotLat)
	assert.Equal(t, 9.19, fake.gotLon)
	assert.Equal(t, model.UnitSI, fake.gotOpts.Unit)
	assert.Equal(t, model.Italian, fake.gotOpts.Language)

	assert.Contains(t, out, "Partly cloudy")
	assert.Contains(t, out, "21.5")
}

func TestForecastCommand(t *testing.T) {
	day := sampleWeather()
	day.Temperature = model.Temperature{Min: f32(14), Max: f32(26)}
	fake := &fakeService{forecast: &model.WeatherGroup{
		Coordinates: model.GeoCoordinates{Latitude: 45.46, Longitude: 9.19},
		TimeZone:    "Europe/Rome",
		Data:        []*model.Weather{day},
		Alerts:      []model.Alert{{Title: "Heat Advisory", SeverityRaw: "advisory"}},
	}}
	out := run(t, fake, "forecast", "--lat", "45.46", "--lon", "9.19")

	assert.Contains(t, out, "Europe/Rome")
	assert.Contains(t, out, "14.0")
	assert.Contains(t, out, "26.0")
	assert.Contains(t, out, "Heat Advisory")
}

func TestDateCommand(t *testing.T) {
	fake := &fakeService{byDate: sampleWeather()}
	out := run(t, fake, "date", "2026-09-01", "--lat", "45.46", "--lon", "9.19")

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), fake.gotDate)
	assert.Contains(t, out, "Partly cloudy")
}

func TestDateCommandRejectsBadDate(t *testing.T) {
	factory := func(id service.ID) (service.Service, error) { return &fakeService{}, nil }
	cmd, err := New(factory, nil)
	assert.NoError(t, err)

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"date", "yesterday"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestBadUnitAndLanguageFlags(t *testing.T) {
	factory := func(id service.ID) (service.Service, error) { return &fakeService{current: sampleWeather()}, nil }

	cmd, _ := New(factory, nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"current", "--units", "kelvin"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))

	cmd, _ = New(factory, nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"current", "--lang", "xx"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestCityWithoutResolverFails(t *testing.T) {
	factory := func(id service.ID) (service.Service, error) { return &fakeService{current: sampleWeather()}, nil }
	cmd, _ := New(factory, nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"current", "--city", "Milan"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
