package model

// Wind speed and direction.
type Wind struct {
	Speed float32 `json:"speed"`
	// Bearing is the direction the wind is coming from, in degrees.
	Bearing int32 `json:"deg"`

	GustSpeed *float32 `json:"gust,omitempty"`
	// GustUnixTime is the time of the wind gust (unix, UTC).
	GustUnixTime *int32 `json:"gust_time,omitempty"`
}
