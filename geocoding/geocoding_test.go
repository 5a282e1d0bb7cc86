package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tj/assert"

	"multiweather/model"
)

const searchBody = `[
	{"lat": "45.4641", "lon": "9.1896", "class": "place", "type": "city", "display_name": "Milan, Lombardy, Italy"},
	{"lat": "45.0000", "lon": "9.0000", "class": "place", "type": "village", "display_name": "Milanino"}
]`

func TestResolve(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	r := New("test-key", nil)
	r.SetEndpoint(ts.URL)

	coords, err := r.Resolve(context.Background(), "Milan", "IT")
	assert.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery["api_key"])
	assert.Equal(t, "IT,Milan", gotQuery["q"])
	assert.Equal(t, model.GeoCoordinates{Latitude: 45.4641, Longitude: 9.1896}, coords)
}

func TestResolveWithoutCountry(t *testing.T) {
	var gotQ string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	r := New("test-key", nil)
	r.SetEndpoint(ts.URL)

	_, err := r.Resolve(context.Background(), "Milan", "")
	assert.NoError(t, err)
	assert.Equal(t, "Milan", gotQ)
}

func TestResolveSkipsNonCityPlaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "1", "lon": "2", "class": "place", "type": "village"}]`))
	}))
	defer ts.Close()

	r := New("test-key", nil)
	r.SetEndpoint(ts.URL)

	_, err := r.Resolve(context.Background(), "Nowhere", "")
	assert.Equal(t, ErrNotFound, err)
}

func TestResolveAcceptsAdministrativeBoundary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "51.5074", "lon": "-0.1278", "class": "boundary", "type": "administrative"}]`))
	}))
	defer ts.Close()

	r := New("test-key", nil)
	r.SetEndpoint(ts.URL)

	coords, err := r.Resolve(context.Background(), "London", "")
	assert.NoError(t, err)
	assert.Equal(t, 51.5074, coords.Latitude)
}

func TestResolveHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	r := New("test-key", nil)
	r.SetEndpoint(ts.URL)

	_, err := r.Resolve(context.Background(), "Milan", "")
	assert.Error(t, err)
}
