package darksky

// Raw DTOs in the provider's native shape. They live for a single
// request: deserialized from the response body, consumed by the mapper,
// then discarded. Required fields (coordinates, timestamps) are
// pointers so the mapper can tell "absent" from zero.

// Forecast is the provider's response envelope.
type Forecast struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// TimeZone is the IANA time zone name for the location.
	TimeZone string `json:"timezone"`
	// Offset is the time zone offset in hours from GMT.
	Offset float32 `json:"offset"`

	Currently *DataPoint `json:"currently"`
	Minutely  *Block     `json:"minutely"`
	Hourly    *Block     `json:"hourly"`
	Daily     *Block     `json:"daily"`

	Alerts []Alert `json:"alerts"`
	Flags  *Flags  `json:"flags"`
}

// Block is a minutely/hourly/daily series with its own summary.
type Block struct {
	Summary string      `json:"summary"`
	Icon    string      `json:"icon"`
	Data    []DataPoint `json:"data"`
}

// DataPoint is one reading, current, hourly or daily.
type DataPoint struct {
	Time    *int32 `json:"time"`
	Summary string `json:"summary"`
	Icon    string `json:"icon"`

	SunriseTime *int32 `json:"sunriseTime"`
	SunsetTime  *int32 `json:"sunsetTime"`

	Temperature         *float32 `json:"temperature"`
	ApparentTemperature *float32 `json:"apparentTemperature"`
	TemperatureHigh     *float32 `json:"temperatureHigh"`
	TemperatureLow      *float32 `json:"temperatureLow"`
	TemperatureHighTime *int32   `json:"temperatureHighTime"`
	TemperatureLowTime  *int32   `json:"temperatureLowTime"`

	ApparentTemperatureHigh     *float32 `json:"apparentTemperatureHigh"`
	ApparentTemperatureLow      *float32 `json:"apparentTemperatureLow"`
	ApparentTemperatureHighTime *int32   `json:"apparentTemperatureHighTime"`
	ApparentTemperatureLowTime  *int32   `json:"apparentTemperatureLowTime"`

	DewPoint *float32 `json:"dewPoint"`
	// Humidity is a fraction in [0,1]; the canonical model wants a
	// percentage.
	Humidity *float32 `json:"humidity"`
	Pressure *float32 `json:"pressure"`

	WindSpeed    float32  `json:"windSpeed"`
	WindBearing  int32    `json:"windBearing"`
	WindGust     *float32 `json:"windGust"`
	WindGustTime *int32   `json:"windGustTime"`

	Visibility *float32 `json:"visibility"`
	// CloudCover is a fraction in [0,1].
	CloudCover *float32 `json:"cloudCover"`

	UVIndex     *float32 `json:"uvIndex"`
	UVIndexTime *int32   `json:"uvIndexTime"`

	Ozone     float32  `json:"ozone"`
	MoonPhase *float32 `json:"moonPhase"`

	PrecipIntensity        *float32 `json:"precipIntensity"`
	PrecipProbability      *float32 `json:"precipProbability"`
	PrecipType             string   `json:"precipType"`
	PrecipIntensityMax     *float32 `json:"precipIntensityMax"`
	PrecipIntensityMaxTime *int32   `json:"precipIntensityMaxTime"`
}

// Alert in the provider's own field names.
type Alert struct {
	Title       string   `json:"title"`
	Regions     []string `json:"regions"`
	Severity    string   `json:"severity"`
	Time        int32    `json:"time"`
	Expires     int32    `json:"expires"`
	Description string   `json:"description"`
	URI         string   `json:"uri"`
}

// Flags is the forecast metadata. Station IDs have no canonical
// equivalent and are dropped by the mapper.
type Flags struct {
	Sources []string `json:"sources"`
	Units   string   `json:"units"`
}
