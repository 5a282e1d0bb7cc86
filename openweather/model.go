package openweather

import (
	"bytes"
	"encoding/json"
)

// Raw DTOs for the provider's "one call" payload: current + hourly +
// daily + alerts in a single response. Deserialized per request,
// consumed once by the mapper, then discarded.

// OneCall is the response envelope.
type OneCall struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
	// TimeZone is the IANA time zone name for the location.
	TimeZone string `json:"timezone"`
	// TimeZoneOffset is reported in seconds from GMT, unlike the other
	// provider's hours.
	TimeZoneOffset int32 `json:"timezone_offset"`

	Current  *DataPoint    `json:"current"`
	Minutely []MinutePoint `json:"minutely"`
	Hourly   []DataPoint   `json:"hourly"`
	Daily    []DataPoint   `json:"daily"`

	Alerts []Alert `json:"alerts"`
}

// DataPoint is one reading, current, hourly or daily.
type DataPoint struct {
	Dt      *int32 `json:"dt"`
	Sunrise *int32 `json:"sunrise"`
	Sunset  *int32 `json:"sunset"`

	Temp      TemperatureBlock `json:"temp"`
	FeelsLike TemperatureBlock `json:"feels_like"`

	Pressure *float32 `json:"pressure"`
	// Humidity is already a percentage here.
	Humidity *int32   `json:"humidity"`
	DewPoint *float32 `json:"dew_point"`

	UVIndex    *float32 `json:"uvi"`
	Clouds     *int32   `json:"clouds"`
	Visibility *float32 `json:"visibility"`

	WindSpeed float32  `json:"wind_speed"`
	WindDeg   int32    `json:"wind_deg"`
	WindGust  *float32 `json:"wind_gust"`

	// Pop is the probability of precipitation (0..1).
	Pop  *float32      `json:"pop"`
	Rain Precipitation `json:"rain"`
	Snow Precipitation `json:"snow"`

	Weather []WeatherInfo `json:"weather"`
}

// WeatherInfo is the per-condition summary entry; only the first one is
// mapped.
type WeatherInfo struct {
	ID          int32  `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MinutePoint is the minute-by-minute precipitation entry. It has no
// canonical equivalent and is dropped by the mapper.
type MinutePoint struct {
	Dt            int32   `json:"dt"`
	Precipitation float32 `json:"precipitation"`
}

// TemperatureBlock decodes the provider's polymorphic temperature
// value: a bare number on current/hourly points, an object with
// day/min/max/night/eve/morn keys on daily points. A bare number lands
// in Day.
type TemperatureBlock struct {
	Day     *float32 `json:"day"`
	Night   *float32 `json:"night"`
	Evening *float32 `json:"eve"`
	Morning *float32 `json:"morn"`
	Min     *float32 `json:"min"`
	Max     *float32 `json:"max"`
}

func (t *TemperatureBlock) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		type plain TemperatureBlock
		return json.Unmarshal(data, (*plain)(t))
	}
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	t.Day = &v
	return nil
}

// Precipitation decodes snow/rain values that arrive either as a bare
// number or as an object in the form {"1h": n}.
type Precipitation struct {
	Value *float32
}

func (p *Precipitation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			OneHour *float32 `json:"1h"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		p.Value = obj.OneHour
		return nil
	}
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

// Alert in the provider's own field names. A non-object value decodes
// to an empty alert rather than failing the whole payload.
type Alert struct {
	SenderName  string   `json:"sender_name"`
	Event       string   `json:"event"`
	Start       int32    `json:"start"`
	End         int32    `json:"end"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
}

func (a *Alert) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	type plain Alert
	return json.Unmarshal(data, (*plain)(a))
}
