package model

// Temperature carries the various readings of one time frame. Every
// field is optional: a "current" reading usually has only Daily set,
// a daily summary has Min/Max/Night/Morning/Evening and may lack Daily.
// Nil means the provider did not report the value; the patch engine
// relies on that distinction.
type Temperature struct {
	Daily    *float32 `json:"day,omitempty"`
	Morning  *float32 `json:"morn,omitempty"`
	Evening  *float32 `json:"eve,omitempty"`
	Night    *float32 `json:"night,omitempty"`
	Min      *float32 `json:"min,omitempty"`
	Max      *float32 `json:"max,omitempty"`
	DewPoint *float32 `json:"dew_point,omitempty"`
	// Humidity is a percentage in [0,100].
	Humidity *int32 `json:"humidity,omitempty"`
	// Pressure at sea level.
	Pressure *float32 `json:"pressure,omitempty"`
}
