package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	BookingAPIBase     string
	UserEmail          string
	TimeZone           string
	Location           *time.Location
	ClockInterval      time.Duration
	RefreshInterval    time.Duration
	RequestTimeout     time.Duration
	FetchFailurePolicy string
	QuietSampleStep    time.Duration

	LocalStoreDriver string
	LocalStoreDSN    string

	CORSAllowedOrigins []string

	Mailer MailerConfig
	Events EventsConfig
	OTel   OTelConfig
}

// MailerConfig selects the booking notification mailer.
type MailerConfig struct {
	Provider      string
	FromAddress   string
	FromName      string
	NotifyAddress string
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string
}

// EventsConfig configures booking event publishing. No brokers disables it.
type EventsConfig struct {
	KafkaBrokers []string
	KafkaTopic   string
}

// OTelConfig configures trace export.
type OTelConfig struct {
	Enabled       bool
	Endpoint      string
	SamplingRatio float64
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the process environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Debug(".env file not loaded", "err", err)
		}
	}
	return FromEnv(env, os.Getenv)
}

// FromEnv builds a Config from getenv. Malformed values are reported together.
func FromEnv(env string, getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		Environment:        env,
		Port:               p.str("PORT", "8080"),
		BookingAPIBase:     strings.TrimRight(p.str("BOOKING_API_BASE", "http://localhost:8081"), "/"),
		UserEmail:          p.str("BOOKING_USER_EMAIL", ""),
		TimeZone:           p.str("TIME_ZONE", ""),
		ClockInterval:      p.duration("CLOCK_INTERVAL", 30*time.Second),
		RefreshInterval:    p.duration("REFRESH_INTERVAL", 0),
		RequestTimeout:     p.duration("REQUEST_TIMEOUT", 10*time.Second),
		FetchFailurePolicy: p.str("FETCH_FAILURE_POLICY", "return_empty"),
		QuietSampleStep:    p.duration("QUIET_HOURS_SAMPLE_STEP", 0),
		LocalStoreDriver:   p.str("LOCALSTORE_DRIVER", "sqlite"),
		LocalStoreDSN:      p.str("LOCALSTORE_DSN", "roomboard.db"),
		CORSAllowedOrigins: p.list("CORS_ALLOWED_ORIGINS"),
		Mailer: MailerConfig{
			Provider:      p.str("MAILER_PROVIDER", "noop"),
			FromAddress:   p.str("MAILER_FROM_ADDRESS", ""),
			FromName:      p.str("MAILER_FROM_NAME", "Room board"),
			NotifyAddress: p.str("MAILER_NOTIFY_ADDRESS", ""),
			AWSRegion:     p.str("AWS_REGION", "eu-central-1"),
			AWSAccessKey:  p.str("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey:  p.str("AWS_SECRET_ACCESS_KEY", ""),
		},
		Events: EventsConfig{
			KafkaBrokers: p.list("EVENTS_KAFKA_BROKERS"),
			KafkaTopic:   p.str("EVENTS_KAFKA_TOPIC", ""),
		},
		OTel: OTelConfig{
			Enabled:       p.boolean("OTEL_ENABLED", false),
			Endpoint:      p.str("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			SamplingRatio: p.ratio("OTEL_SAMPLING_RATIO", 1),
		},
	}

	cfg.Location = time.Local
	if cfg.TimeZone != "" {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			p.fail("TIME_ZONE", err)
		} else {
			cfg.Location = loc
		}
	}
	if cfg.ClockInterval <= 0 {
		p.fail("CLOCK_INTERVAL", errors.New("must be positive"))
	}
	if cfg.RequestTimeout <= 0 {
		p.fail("REQUEST_TIMEOUT", errors.New("must be positive"))
	}
	if cfg.RefreshInterval < 0 {
		p.fail("REFRESH_INTERVAL", errors.New("must not be negative"))
	}
	if cfg.QuietSampleStep < 0 {
		p.fail("QUIET_HOURS_SAMPLE_STEP", errors.New("must not be negative"))
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) fail(key string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	if v == "0" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return d
}

func (p *parser) boolean(key string, def bool) bool {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return b
}

func (p *parser) ratio(key string, def float64) float64 {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, err)
		return def
	}
	if f < 0 || f > 1 {
		p.fail(key, errors.New("must be between 0 and 1"))
		return def
	}
	return f
}

func (p *parser) list(key string) []string {
	var out []string
	for _, s := range strings.Split(p.getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
