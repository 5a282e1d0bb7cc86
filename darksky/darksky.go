package darksky

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

const defaultEndpoint = "https://api.darksky.net/forecast"

// Blocks that can be excluded from a forecast request.
const (
	ExcludeMinutely = "minutely"
	ExcludeHourly   = "hourly"
	ExcludeDaily    = "daily"
	ExcludeAlerts   = "alerts"
	ExcludeFlags    = "flags"
)

// unitValue translates the canonical unit into the provider's
// vocabulary (us/si/ca/uk/uk2/auto; only three are reachable from the
// canonical enum). An unknown value is a programming error.
func unitValue(u model.Unit) string {
	switch u {
	case model.UnitAuto:
		return "auto"
	case model.UnitSI:
		return "si"
	case model.UnitImperial:
		return "us"
	}
	panic(fmt.Sprintf("darksky: unknown unit %d", u))
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
	panic(fmt.Sprintf("darksky: unknown language %d", l))
}

// Client is the raw Dark-Sky fetcher: one GET per call, gzip handled by
// the transport, errors re-wrapped into the model taxonomy.
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

// Forecast fetches the raw forecast envelope for a location. The
// excludes list trims blocks server-side (current weather drops daily
// and minutely, a full forecast drops only minutely).
func (c *Client) Forecast(ctx context.Context, lat, lon float64, excludes []string, unit model.Unit, lang model.Language) (*Forecast, error) {
	if c.apiKey == "" {
		return nil, model.NewError(model.ErrCodeEmptyAPIKey, "no API key was given")
	}

	url := fmt.Sprintf("%s/%s/%s,%s",
		c.endpoint,
		c.apiKey,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))

	req := c.rc.R().SetContext(ctx).
		SetQueryParam("units", unitValue(unit)).
		SetQueryParam("lang", langValue(lang))
	if len(excludes) > 0 {
		req.SetQueryParam("exclude", strings.Join(excludes, ","))
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, model.WrapError(model.ErrCodeHTTPError, "couldn't retrieve data", err)
	}
	if err := statusError(resp); err != nil {
		return nil, err
	}

	var out Forecast
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
