package model

import (
	"testing"
	"time"

	"github.com/tj/assert"
)

func f32(v float32) *float32 { return &v }
func i32(v int32) *int32     { return &v }

func patchFixture() (*Weather, []*Weather) {
	now := UnixFromTime(time.Date(2021, 6, 15, 11, 0, 0, 0, time.UTC))
	sunrise := UnixFromTime(time.Date(2021, 6, 15, 4, 30, 0, 0, time.UTC))
	sunset := UnixFromTime(time.Date(2021, 6, 15, 20, 30, 0, 0, time.UTC))

	currently := &Weather{
		UnixTime: now,
		Temperature: Temperature{
			Daily:    f32(21.5),
			Humidity: i32(60),
		},
		ApparentTemperature: Temperature{Daily: f32(20)},
	}
	daily := []*Weather{
		{
			UnixTime:        now,
			SunriseUnixTime: &sunrise,
			SunsetUnixTime:  &sunset,
			UVIndexUnixTime: i32(now + 3600),
			Temperature: Temperature{
				Daily:    f32(23),
				Min:      f32(14),
				Max:      f32(26),
				Humidity: i32(55),
				Pressure: f32(1013),
			},
			ApparentTemperature: Temperature{
				Min: f32(13),
				Max: f32(27),
			},
			ApparentTemperatureHighUnixTime: i32(now + 7200),
			ApparentTemperatureLowUnixTime:  i32(now - 7200),
			PrecipIntensity:                 f32(0.2),
			PrecipProbability:               f32(0.4),
			PrecipType:                      "rain",
			PrecipIntensityMax:              f32(0.8),
			PrecipIntensityMaxUnixTime:      i32(now + 10800),
		},
	}
	return currently, daily
}

func TestPatchSameDayFillsMissingFields(t *testing.T) {
	currently, daily := patchFixture()
	PatchSameDay(currently, daily)

	assert.Equal(t, daily[0].SunriseUnixTime, currently.SunriseUnixTime)
	assert.Equal(t, daily[0].SunsetUnixTime, currently.SunsetUnixTime)
	assert.Equal(t, daily[0].UVIndexUnixTime, currently.UVIndexUnixTime)
	assert.Equal(t, daily[0].ApparentTemperatureHighUnixTime, currently.ApparentTemperatureHighUnixTime)
	assert.Equal(t, daily[0].ApparentTemperatureLowUnixTime, currently.ApparentTemperatureLowUnixTime)

	assert.Equal(t, f32(0.2), currently.PrecipIntensity)
	assert.Equal(t, f32(0.4), currently.PrecipProbability)
	assert.Equal(t, "rain", currently.PrecipType)
	assert.Equal(t, f32(0.8), currently.PrecipIntensityMax)
	assert.Equal(t, daily[0].PrecipIntensityMaxUnixTime, currently.PrecipIntensityMaxUnixTime)

	assert.Equal(t, f32(14), currently.Temperature.Min)
	assert.Equal(t, f32(26), currently.Temperature.Max)
	assert.Equal(t, f32(1013), currently.Temperature.Pressure)
	assert.Equal(t, f32(13), currently.ApparentTemperature.Min)
	assert.Equal(t, f32(27), currently.ApparentTemperature.Max)
}

func TestPatchSameDayNeverOverwrites(t *testing.T) {
	currently, daily := patchFixture()
	PatchSameDay(currently, daily)

	// Fields that were already present keep their original values.
	assert.Equal(t, f32(21.5), currently.Temperature.Daily)
	assert.Equal(t, i32(60), currently.Temperature.Humidity)
	assert.Equal(t, f32(20), currently.ApparentTemperature.Daily)
}

func TestPatchSameDayIdempotent(t *testing.T) {
	currently, daily := patchFixture()
	PatchSameDay(currently, daily)

	snapshot := *currently
	PatchSameDay(currently, daily)
	assert.Equal(t, snapshot, *currently)
}

func TestPatchSameDaySkipsOtherDays(t *testing.T) {
	currently, daily := patchFixture()
	// Move the daily entry's sunrise to the previous day.
	*daily[0].SunriseUnixTime -= 86400

	PatchSameDay(currently, daily)
	assert.Nil(t, currently.SunriseUnixTime)
	assert.Nil(t, currently.Temperature.Min)
}

func TestPatchSameDayMatchesInProviderLocalTime(t *testing.T) {
	// Current reading at 23:30 UTC on the 15th in a UTC+2 zone is
	// locally already the 16th, so it must match the 16th's daily entry.
	now := UnixFromTime(time.Date(2021, 6, 15, 23, 30, 0, 0, time.UTC))
	sunrise := UnixFromTime(time.Date(2021, 6, 16, 3, 0, 0, 0, time.UTC))

	currently := &Weather{UnixTime: now, TimeZoneOffset: 2}
	daily := []*Weather{{
		SunriseUnixTime: &sunrise,
		Temperature:     Temperature{Min: f32(10)},
	}}

	PatchSameDay(currently, daily)
	assert.Equal(t, f32(10), currently.Temperature.Min)
}

func TestPatchSameDayNilInputs(t *testing.T) {
	PatchSameDay(nil, nil)

	currently, _ := patchFixture()
	PatchSameDay(currently, nil)
	assert.Nil(t, currently.SunriseUnixTime)

	PatchSameDay(currently, []*Weather{nil, {}})
	assert.Nil(t, currently.SunriseUnixTime)
}
