package main

import (
	"context"
	_ "embed"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"multiweather/cli"
	"multiweather/geocoding"
	"multiweather/service"
)

//go:embed config.yaml
var configRaw []byte

type config struct {
	DarkSky struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"darksky"`
	OpenWeather struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"openweathermap"`
	Geocoding struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"geocoding"`
}

func main() {
	ctx := context.Background()
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var cfg config
	if err := yaml.Unmarshal(configRaw, &cfg); err != nil {
		logrus.Fatalf("config: %s", err)
	}

	// .env and the environment override the embedded file, so API keys
	// never have to live in it.
	_ = godotenv.Load()
	if v := os.Getenv("DARKSKY_API_KEY"); v != "" {
		cfg.DarkSky.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.OpenWeather.APIKey = v
	}
	if v := os.Getenv("GEOCODING_API_KEY"); v != "" {
		cfg.Geocoding.APIKey = v
	}

	keys := map[service.ID]string{
		service.DarkSky:     cfg.DarkSky.APIKey,
		service.OpenWeather: cfg.OpenWeather.APIKey,
	}
	factory := func(id service.ID) (service.Service, error) {
		return service.New(id, keys[id], nil)
	}
	resolver := geocoding.New(cfg.Geocoding.APIKey, nil)

	cmd, err := cli.New(factory, resolver)
	if err != nil {
		logrus.Fatalf("new cli: %s", err)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		logrus.Fatalf("exec: %s", err)
	}
}
