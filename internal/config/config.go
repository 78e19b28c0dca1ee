package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         int           `yaml:"port" validate:"gt=0,lte=65535"`
	WriteTimeout time.Duration `yaml:"writeTimeout" validate:"gte=0"`
}

// ProviderConfig contains travel-time provider configuration
type ProviderConfig struct {
	BaseURL       string        `yaml:"baseURL" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	RatePerSecond float64       `yaml:"ratePerSecond" validate:"gte=0"`
	Burst         int           `yaml:"burst" validate:"gte=1"`
}

// OptimizerConfig contains route optimization settings
type OptimizerConfig struct {
	SlotHours      []int         `yaml:"slotHours" validate:"required,min=1,dive,gte=0,lte=23"`
	CandidateHours []int         `yaml:"candidateHours" validate:"required,min=1,dive,gte=0,lte=23"`
	MaxLocations   int           `yaml:"maxLocations" validate:"gte=1"`
	Workers        int           `yaml:"workers" validate:"gte=1"`
	RequestTimeout time.Duration `yaml:"requestTimeout" validate:"gte=0"`
	Timezone       string        `yaml:"timezone"`
	location       *time.Location
}

// Location resolves Timezone; an empty value means the server's local zone.
func (o OptimizerConfig) Location() *time.Location {
	if o.location != nil {
		return o.location
	}
	return time.Local
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Provider  ProviderConfig  `yaml:"provider"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:         8080,
			WriteTimeout: 120 * time.Second,
		},
		Provider: ProviderConfig{
			BaseURL:       "https://maps.googleapis.com",
			Timeout:       10 * time.Second,
			RatePerSecond: 20,
			Burst:         5,
		},
		Optimizer: OptimizerConfig{
			SlotHours:      []int{9, 12, 15, 17, 19},
			CandidateHours: []int{9, 17},
			MaxLocations:   10,
			Workers:        8,
			RequestTimeout: 90 * time.Second,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return AppConfig{}, fmt.Errorf("load config: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if err := Validate(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks struct constraints and resolves the optimizer time zone.
func Validate(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Provider); err != nil {
		return err
	}
	if err := v.Struct(cfg.Optimizer); err != nil {
		return err
	}

	if cfg.Optimizer.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Optimizer.Timezone)
		if err != nil {
			return fmt.Errorf("optimizer timezone %q: %w", cfg.Optimizer.Timezone, err)
		}
		cfg.Optimizer.location = loc
	}

	return nil
}
