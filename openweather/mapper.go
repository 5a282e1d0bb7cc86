package openweather

import (
	"fmt"

	"multiweather/model"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s.png"

// Explicit raw-to-canonical mapping for the one-call payload. The
// provider reports its time zone offset in seconds; all mapped entities
// carry hours, converted here.

// ToCurrentWeather maps the envelope plus its current reading into one
// canonical Weather.
func ToCurrentWeather(oc *OneCall) (*model.Weather, error) {
	if err := checkEnvelope(oc); err != nil {
		return nil, err
	}
	if oc.Current == nil {
		return nil, model.NewError(model.ErrCodeJSONParsing, "payload is missing the current data point")
	}
	w, err := mapDataPoint(oc.Current)
	if err != nil {
		return nil, err
	}
	w.Coordinates = model.GeoCoordinates{Latitude: *oc.Lat, Longitude: *oc.Lon}
	w.TimeZone = oc.TimeZone
	w.TimeZoneOffset = model.HoursFromSeconds(oc.TimeZoneOffset)
	w.Alerts = mapAlerts(oc.Alerts)
	return w, nil
}

// ToWeatherGroup maps the envelope and its daily list into a canonical
// WeatherGroup, one reading per day, with the group's location data
// copied down onto any day that lacks it.
func ToWeatherGroup(oc *OneCall) (*model.WeatherGroup, error) {
	if err := checkEnvelope(oc); err != nil {
		return nil, err
	}
	g := newGroup(oc)
	for i := range oc.Daily {
		w, err := mapDataPoint(&oc.Daily[i])
		if err != nil {
			return nil, err
		}
		g.Add(w)
	}
	g.ApplyDefaults()
	return g, nil
}

// HourlyGroup maps the envelope and its hourly list, for nesting under
// a current-weather result.
func HourlyGroup(oc *OneCall) (*model.WeatherGroup, error) {
	if err := checkEnvelope(oc); err != nil {
		return nil, err
	}
	g := newGroup(oc)
	for i := range oc.Hourly {
		w, err := mapDataPoint(&oc.Hourly[i])
		if err != nil {
			return nil, err
		}
		g.Add(w)
	}
	g.ApplyDefaults()
	return g, nil
}

func checkEnvelope(oc *OneCall) error {
	if oc == nil || oc.Lat == nil || oc.Lon == nil {
		return model.NewError(model.ErrCodeJSONParsing, "payload is missing coordinates")
	}
	return nil
}

func newGroup(oc *OneCall) *model.WeatherGroup {
	return &model.WeatherGroup{
		Coordinates:    model.GeoCoordinates{Latitude: *oc.Lat, Longitude: *oc.Lon},
		TimeZone:       oc.TimeZone,
		TimeZoneOffset: model.HoursFromSeconds(oc.TimeZoneOffset),
		Alerts:         mapAlerts(oc.Alerts),
	}
}

func mapDataPoint(dp *DataPoint) (*model.Weather, error) {
	if dp.Dt == nil {
		return nil, model.NewError(model.ErrCodeJSONParsing, "data point is missing its timestamp")
	}

	w := &model.Weather{
		Visibility: dp.Visibility,
		Wind: model.Wind{
			Speed:     dp.WindSpeed,
			Bearing:   dp.WindDeg,
			GustSpeed: dp.WindGust,
		},
		UnixTime:          *dp.Dt,
		SunriseUnixTime:   dp.Sunrise,
		SunsetUnixTime:    dp.Sunset,
		UVIndex:           dp.UVIndex,
		Cloudness:         dp.Clouds,
		PrecipProbability: dp.Pop,
		Rain:              dp.Rain.Value,
		Snow:              dp.Snow.Value,
	}

	if len(dp.Weather) > 0 {
		info := dp.Weather[0]
		w.Summary = info.Main
		w.Description = info.Description
		w.Icon = info.Icon
		if info.Icon != "" {
			w.IconURL = fmt.Sprintf(iconURLFormat, info.Icon)
		}
	}

	w.Temperature = model.Temperature{
		Daily:    dp.Temp.Day,
		Morning:  dp.Temp.Morning,
		Evening:  dp.Temp.Evening,
		Night:    dp.Temp.Night,
		Min:      dp.Temp.Min,
		Max:      dp.Temp.Max,
		DewPoint: dp.DewPoint,
		Humidity: dp.Humidity,
		Pressure: dp.Pressure,
	}
	w.ApparentTemperature = model.Temperature{
		Daily:   dp.FeelsLike.Day,
		Morning: dp.FeelsLike.Morning,
		Evening: dp.FeelsLike.Evening,
		Night:   dp.FeelsLike.Night,
		Min:     dp.FeelsLike.Min,
		Max:     dp.FeelsLike.Max,
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
			Sender:          a.SenderName,
			Title:           a.Event,
			Description:     a.Description,
			URI:             a.URL,
			StartUnixTime:   a.Start,
			ExpiresUnixTime: a.End,
		})
	}
	return out
}
