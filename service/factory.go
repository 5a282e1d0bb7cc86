package service

import (
	"fmt"
	"net/http"
)

// ID names one of the supported providers.
type ID string

const (
	DarkSky     ID = "darksky"
	OpenWeather ID = "openweathermap"
)

type constructor func(apiKey string, hc *http.Client) Service

// registry is populated once at startup and read-only afterwards, so
// concurrent lookups need no synchronization.
var registry = map[ID]constructor{
	DarkSky:     NewDarkSky,
	OpenWeather: NewOpenWeather,
}

// IDs lists the registered provider identifiers.
func IDs() []ID {
	out := make([]ID, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	return out
}

// New resolves a provider identifier and API key to a concrete adapter.
// hc may be nil; passing one injects a transport for testing. The key
// is not validated here: every operation checks it before any I/O.
func New(id ID, apiKey string, hc *http.Client) (Service, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("service: unknown provider %q", id)
	}
	return c(apiKey, hc), nil
}
