package model

// WeatherGroup is a forecast: an ordered sequence of readings, one per
// day or per hour, plus the location data shared by all of them.
type WeatherGroup struct {
	Coordinates GeoCoordinates `json:"coordinates"`
	// TimeZone is the IANA time zone name of the location.
	TimeZone string `json:"timezone,omitempty"`
	// TimeZoneOffset in hours from GMT.
	TimeZoneOffset float32 `json:"timezone_offset,omitempty"`

	Alerts []Alert    `json:"alerts,omitempty"`
	Data   []*Weather `json:"data"`
}

// Add appends readings to the group.
func (g *WeatherGroup) Add(weathers ...*Weather) {
	g.Data = append(g.Data, weathers...)
}

// Len is the number of readings in the group.
func (g *WeatherGroup) Len() int {
	return len(g.Data)
}

// ApplyDefaults copies the group's coordinates, time zone and offset
// onto every reading that lacks them. Called once at assembly time;
// after it returns every element satisfies the group-level invariant.
func (g *WeatherGroup) ApplyDefaults() {
	for _, w := range g.Data {
		if w.TimeZone == "" {
			w.TimeZone = g.TimeZone
		}
		if w.TimeZoneOffset == 0 {
			w.TimeZoneOffset = g.TimeZoneOffset
		}
		if (w.Coordinates == GeoCoordinates{}) {
			w.Coordinates = g.Coordinates
		}
	}
}
