package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"multiweather/model"
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5"

// unitValue translates the canonical unit into the provider's
// vocabulary. The provider has no automatic mode, so Auto falls back to
// its default "standard" units. An unknown value is a programming error.
func unitValue(u model.Unit) string {
	switch u {
	case model.UnitAuto:
		return "standard"
	case model.UnitSI:
		return "metric"
	case model.UnitImperial:
		return "imperial"
	}
	panic(fmt.Sprintf("openweather: unknown unit %d", u))
}

func langValue(l model.Language) string {
	switch l {
	case model.English:
		return "en"
	case model.Italian:
		return "it"
	case model.French:
		return "fr"
	case model.German:
		return "de"
	}
	panic(fmt.Sprintf("openweather: unknown language %d", l))
}

// Client is the raw OpenWeather fetcher.
type Client struct {
	apiKey   string
	endpoint string
	rc       *resty.Client
}

// NewClient builds a client for the given key. hc may be nil; passing
// one lets tests inject a transport double.
func NewClient(apiKey string, hc *http.Client) *Client {
	rc := resty.New()
	if hc != nil {
		rc = resty.NewWithClient(hc)
	}
	return &Client{apiKey: apiKey, endpoint: defaultEndpoint, rc: rc}
}

// SetEndpoint overrides the API base URL, for tests.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = strings.TrimRight(endpoint, "/")
}

// OneCall fetches the single-endpoint payload bundling current, hourly,
// daily and alerts.
func (c *Client) OneCall(ctx context.Context, lat, lon float64, unit model.Unit, lang model.Language) (*OneCall, error) {
	if c.apiKey == "" {
		return nil, model.NewError(model.ErrCodeEmptyAPIKey, "no API key was given")
	}

	resp, err := c.rc.R().SetContext(ctx).
		SetQueryParam("lat", strconv.FormatFloat(lat, 'f', -1, 64)).
		SetQueryParam("lon", strconv.FormatFloat(lon, 'f', -1, 64)).
		SetQueryParam("units", unitValue(unit)).
		SetQueryParam("lang", langValue(lang)).
		SetQueryParam("appid", c.apiKey).
		Get(c.endpoint + "/onecall")
	if err != nil {
		return nil, model.WrapError(model.ErrCodeHTTPError, "couldn't retrieve data", err)
	}
	if err := statusError(resp); err != nil {
		return nil, err
	}

	var out OneCall
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, model.WrapError(model.ErrCodeJSONParsing, err.Error(), err)
	}
	return &out, nil
}

func statusError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return model.NewError(model.ErrCodeHTTPUnauthorized, reason(resp))
	case !resp.IsSuccess():
		return model.NewError(model.ErrCodeHTTPError, reason(resp))
	}
	return nil
}

func reason(resp *resty.Response) string {
	if s := strings.TrimSpace(resp.Status()); s != "" {
		return s
	}
	return fmt.Sprintf("couldn't retrieve data: status %d", resp.StatusCode())
}
