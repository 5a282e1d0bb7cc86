package darksky

import (
	"math"

	"multiweather/model"
)

// Explicit raw-to-canonical mapping. Each binding is a plain field
// copy here; fields with no canonical equivalent (ozone, moon phase,
// station IDs in flags) are dropped on purpose.

// ToCurrentWeather maps the envelope plus its current reading into one
// canonical Weather. Coordinates and the current timestamp are
// required; everything else may be absent.
func ToCurrentWeather(f *Forecast) (*model.Weather, error) {
	if err := checkEnvelope(f); err != nil {
		return nil, err
	}
	if f.Currently == nil {
		return nil, model.NewError(model.ErrCodeJSONParsing, "forecast is missing the current data point")
	}
	w, err := mapDataPoint(f.Currently)
	if err != nil {
		return nil, err
	}
	w.Coordinates = model.GeoCoordinates{Latitude: *f.Latitude, Longitude: *f.Longitude}
	w.TimeZone = f.TimeZone
	w.TimeZoneOffset = f.Offset
	w.Alerts = mapAlerts(f.Alerts)
	return w, nil
}

// ToWeatherGroup maps the envelope and its daily block into a canonical
// WeatherGroup, one reading per day, with the group's location data
// copied down onto any day that lacks it.
func ToWeatherGroup(f *Forecast) (*model.WeatherGroup, error) {
	if err := checkEnvelope(f); err != nil {
		return nil, err
	}
	g := newGroup(f)
	if f.Daily != nil {
		for i := range f.Daily.Data {
			w, err := mapDataPoint(&f.Daily.Data[i])
			if err != nil {
				return nil, err
			}
			g.Add(w)
		}
	}
	g.ApplyDefaults()
	return g, nil
}

// HourlyGroup maps the envelope and its hourly block, for nesting under
// a current-weather result.
func HourlyGroup(f *Forecast) (*model.WeatherGroup, error) {
	if err := checkEnvelope(f); err != nil {
		return nil, err
	}
	g := newGroup(f)
	if f.Hourly != nil {
		for i := range f.Hourly.Data {
			w, err := mapDataPoint(&f.Hourly.Data[i])
			if err != nil {
				return nil, err
			}
			g.Add(w)
		}
	}
	g.ApplyDefaults()
	return g, nil
}

func checkEnvelope(f *Forecast) error {
	if f == nil || f.Latitude == nil || f.Longitude == nil {
		return model.NewError(model.ErrCodeJSONParsing, "forecast is missing coordinates")
	}
	return nil
}

func newGroup(f *Forecast) *model.WeatherGroup {
	return &model.WeatherGroup{
		Coordinates:    model.GeoCoordinates{Latitude: *f.Latitude, Longitude: *f.Longitude},
		TimeZone:       f.TimeZone,
		TimeZoneOffset: f.Offset,
		Alerts:         mapAlerts(f.Alerts),
	}
}

func mapDataPoint(dp *DataPoint) (*model.Weather, error) {
	if dp.Time == nil {
		return nil, model.NewError(model.ErrCodeJSONParsing, "data point is missing its timestamp")
	}

	w := &model.Weather{
		Summary:    dp.Summary,
		Icon:       dp.Icon,
		Visibility: dp.Visibility,
		Wind: model.Wind{
			Speed:        dp.WindSpeed,
			Bearing:      dp.WindBearing,
			GustSpeed:    dp.WindGust,
			GustUnixTime: dp.WindGustTime,
		},
		UnixTime:        *dp.Time,
		SunriseUnixTime: dp.SunriseTime,
		SunsetUnixTime:  dp.SunsetTime,
		UVIndex:         dp.UVIndex,
		UVIndexUnixTime: dp.UVIndexTime,

		ApparentTemperatureHighUnixTime: dp.ApparentTemperatureHighTime,
		ApparentTemperatureLowUnixTime:  dp.ApparentTemperatureLowTime,

		PrecipIntensity:            dp.PrecipIntensity,
		PrecipProbability:          dp.PrecipProbability,
		PrecipType:                 dp.PrecipType,
		PrecipIntensityMax:         dp.PrecipIntensityMax,
		PrecipIntensityMaxUnixTime: dp.PrecipIntensityMaxTime,
	}

	w.Temperature = model.Temperature{
		Daily:    dp.Temperature,
		Min:      dp.TemperatureLow,
		Max:      dp.TemperatureHigh,
		DewPoint: dp.DewPoint,
		Pressure: dp.Pressure,
	}
	if dp.Humidity != nil {
		pct := model.HumidityToPercent(*dp.Humidity)
		w.Temperature.Humidity = &pct
	}
	w.ApparentTemperature = model.Temperature{
		Daily: dp.ApparentTemperature,
		Min:   dp.ApparentTemperatureLow,
		Max:   dp.ApparentTemperatureHigh,
	}

	if dp.CloudCover != nil {
		pct := int32(math.Round(float64(*dp.CloudCover * 100)))
		w.Cloudness = &pct
	}
	return w, nil
}

func mapAlerts(alerts []Alert) []model.Alert {
	if len(alerts) == 0 {
		return nil
	}
	out := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, model.Alert{
			Title:           a.Title,
			Regions:         a.Regions,
			Description:     a.Description,
			URI:             a.URI,
			StartUnixTime:   a.Time,
			ExpiresUnixTime: a.Expires,
			SeverityRaw:     a.Severity,
		})
	}
	return out
}
