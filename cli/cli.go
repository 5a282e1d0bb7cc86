package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"multiweather/geocoding"
	"multiweather/model"
	"multiweather/service"
)

// Factory resolves a provider identifier to a ready service.
type Factory func(id service.ID) (service.Service, error)

type options struct {
	provider string
	lat      float64
	lon      float64
	city     string
	country  string
	units    string
	lang     string
	verbose  bool
}

// New builds the root command with the current/forecast/date
// subcommands.
func New(factory Factory, resolver *geocoding.Resolver) (*cobra.Command, error) {
	opts := &options{}

	root := &cobra.Command{
		Use:   "multiweather",
		Short: "CLI for normalized weather data from multiple providers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.provider, "provider", "p", string(service.OpenWeather), "weather provider (darksky|openweathermap)")
	root.PersistentFlags().Float64Var(&opts.lat, "lat", 0, "latitude")
	root.PersistentFlags().Float64Var(&opts.lon, "lon", 0, "longitude")
	root.PersistentFlags().StringVar(&opts.city, "city", "", "city name, resolved to coordinates when lat/lon are not given")
	root.PersistentFlags().StringVar(&opts.country, "country", "", "country qualifier for --city")
	root.PersistentFlags().StringVarP(&opts.units, "units", "u", "auto", "unit system (auto|si|imperial)")
	root.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "en", "summary language (en|it|fr|de)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newCurrentCommand(factory, resolver, opts),
		newForecastCommand(factory, resolver, opts),
		newDateCommand(factory, resolver, opts),
	)

	return root, nil
}

func newCurrentCommand(factory Factory, resolver *geocoding.Resolver, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Current weather conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, callOpts, coords, err := prepare(cmd.Context(), factory, resolver, opts)
			if err != nil {
				return err
			}

			w, err := svc.GetCurrentWeather(cmd.Context(), coords.Latitude, coords.Longitude, callOpts)
			if err != nil {
				return err
			}

			printWeather(cmd, w)
			if w.Hourly != nil && w.Hourly.Len() > 0 {
				printHourlyStrip(cmd, w.Hourly)
			}
			return nil
		},
	}
}

func newForecastCommand(factory Factory, resolver *geocoding.Resolver, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Day-by-day forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, callOpts, coords, err := prepare(cmd.Context(), factory, resolver, opts)
			if err != nil {
				return err
			}

			g, err := svc.GetForecast(cmd.Context(), coords.Latitude, coords.Longitude, callOpts)
			if err != nil {
				return err
			}

			cmd.Printf("LOCATION\t%.4f,%.4f  %s\n", g.Coordinates.Latitude, g.Coordinates.Longitude, g.TimeZone)
			for _, day := range g.Data {
				cmd.Printf("%s\tmin %s  max %s\t%s\n",
					day.Time().Format("2006-01-02"),
					fmtTemp(day.Temperature.Min),
					fmtTemp(day.Temperature.Max),
					day.Summary)
			}
			for _, alert := range g.Alerts {
				cmd.Printf("ALERT [%s]\t%s\n", alert.Severity(), alert.Title)
			}
			return nil
		},
	}
}

func newDateCommand(factory Factory, resolver *geocoding.Resolver, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "date <YYYY-MM-DD>",
		Short: "Weather for a specific date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}

			svc, callOpts, coords, err := prepare(cmd.Context(), factory, resolver, opts)
			if err != nil {
				return err
			}

			w, err := svc.GetWeatherByDate(cmd.Context(), coords.Latitude, coords.Longitude, date, callOpts)
			if err != nil {
				return err
			}

			printWeather(cmd, w)
			return nil
		},
	}
}

func prepare(ctx context.Context, factory Factory, resolver *geocoding.Resolver, opts *options) (service.Service, service.Options, model.GeoCoordinates, error) {
	svc, err := factory(service.ID(opts.provider))
	if err != nil {
		return nil, service.Options{}, model.GeoCoordinates{}, err
	}

	callOpts, err := parseOptions(opts)
	if err != nil {
		return nil, service.Options{}, model.GeoCoordinates{}, err
	}

	coords := model.GeoCoordinates{Latitude: opts.lat, Longitude: opts.lon}
	if opts.city != "" && coords == (model.GeoCoordinates{}) {
		if resolver == nil {
			return nil, service.Options{}, model.GeoCoordinates{}, fmt.Errorf("no geocoding configured, pass --lat/--lon")
		}
		coords, err = resolver.Resolve(ctx, opts.city, opts.country)
		if err != nil {
			return nil, service.Options{}, model.GeoCoordinates{}, err
		}
	}
	return svc, callOpts, coords, nil
}

func parseOptions(opts *options) (service.Options, error) {
	out := service.Options{}

	switch opts.units {
	case "auto":
		out.Unit = model.UnitAuto
	case "si":
		out.Unit = model.UnitSI
	case "imperial":
		out.Unit = model.UnitImperial
	default:
		return out, fmt.Errorf("unknown unit system %q", opts.units)
	}

	switch opts.lang {
	case "en":
		out.Language = model.English
	case "it":
		out.Language = model.Italian
	case "fr":
		out.Language = model.French
	case "de":
		out.Language = model.German
	default:
		return out, fmt.Errorf("unknown language %q", opts.lang)
	}
	return out, nil
}

func printWeather(cmd *cobra.Command, w *model.Weather) {
	cmd.Printf("LOCATION\t%.4f,%.4f  %s\n", w.Coordinates.Latitude, w.Coordinates.Longitude, w.TimeZone)
	cmd.Printf("TIME\t\t%s\n", w.Time().Format(time.RFC1123))
	if w.Summary != "" {
		cmd.Printf("SUMMARY\t\t%s\n", w.Summary)
	}
	cmd.Printf("TEMP\t\t%s (feels like %s)\n", fmtTemp(w.Temperature.Daily), fmtTemp(w.ApparentTemperature.Daily))
	cmd.Printf("WIND\t\t%.1f @ %d deg\n", w.Wind.Speed, w.Wind.Bearing)
	if w.Temperature.Humidity != nil {
		cmd.Printf("HUMIDITY\t%d%%\n", *w.Temperature.Humidity)
	}
	if sunrise, ok := w.SunriseTime(); ok {
		cmd.Printf("SUNRISE\t\t%s\n", sunrise.Format("15:04"))
	}
	if sunset, ok := w.SunsetTime(); ok {
		cmd.Printf("SUNSET\t\t%s\n", sunset.Format("15:04"))
	}
	for _, alert := range w.Alerts {
		cmd.Printf("ALERT [%s]\t%s\n", alert.Severity(), alert.Title)
	}
}

// printHourlyStrip renders the next hours as compact columns.
func printHourlyStrip(cmd *cobra.Command, hourly *model.WeatherGroup) {
	limit := hourly.Len()
	if limit > 12 {
		limit = 12
	}

	cmd.Printf("HOUR\t\t")
	for _, h := range hourly.Data[:limit] {
		cmd.Printf("%3s  ", h.Time().Format("15"))
	}
	cmd.Printf("\nTEMP\t\t")
	for _, h := range hourly.Data[:limit] {
		cmd.Printf("%s  ", fmtTempShort(h.Temperature.Daily))
	}
	cmd.Printf("\n")
}

func fmtTemp(v *float32) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtTempShort(v *float32) string {
	if v == nil {
		return "  -"
	}
	return fmt.Sprintf("%3.0f", *v)
}
