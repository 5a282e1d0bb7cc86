package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"multiweather/model"
)

const defaultEndpoint = "https://geocode.maps.co/search"

// ErrNotFound means no place of a usable kind matched the query.
var ErrNotFound = errors.New("geocoding: place not found")

// Resolver turns a free-text place name into coordinates, so callers
// can use the city-based CLI commands where the weather services only
// take lat/lon.
type Resolver struct {
	apiKey   string
	endpoint string
	rc       *resty.Client
}

// New builds a resolver. hc may be nil.
func New(apiKey string, hc *http.Client) *Resolver {
	rc := resty.New()
	if hc != nil {
		rc = resty.NewWithClient(hc)
	}
	return &Resolver{apiKey: apiKey, endpoint: defaultEndpoint, rc: rc}
}

// SetEndpoint overrides the API base URL, for tests.
func (r *Resolver) SetEndpoint(endpoint string) {
	r.endpoint = endpoint
}

// Resolve looks up a city (optionally qualified by country) and returns
// its coordinates.
func (r *Resolver) Resolve(ctx context.Context, city, country string) (model.GeoCoordinates, error) {
	query := city
	if country != "" {
		query = fmt.Sprintf("%s,%s", country, city)
	}

	resp, err := r.rc.R().SetContext(ctx).
		SetQueryParam("api_key", r.apiKey).
		SetQueryParam("q", query).
		Get(r.endpoint)
	if err != nil {
		return model.GeoCoordinates{}, err
	}
	if !resp.IsSuccess() {
		return model.GeoCoordinates{}, fmt.Errorf("geocoding: status code %d", resp.StatusCode())
	}

	var places []struct {
		Lat   string `json:"lat"`
		Lon   string `json:"lon"`
		Class string `json:"class"`
		Type  string `json:"type"`
	}
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return model.GeoCoordinates{}, err
	}

	for _, p := range places {
		if p.Type == "city" && p.Class == "place" ||
			p.Type == "administrative" && p.Class == "boundary" {
			lat, err := strconv.ParseFloat(p.Lat, 64)
			if err != nil {
				return model.GeoCoordinates{}, err
			}
			lon, err := strconv.ParseFloat(p.Lon, 64)
			if err != nil {
				return model.GeoCoordinates{}, err
			}
			return model.GeoCoordinates{Latitude: lat, Longitude: lon}, nil
		}
	}
	return model.GeoCoordinates{}, ErrNotFound
}
