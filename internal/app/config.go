package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/claon/claon-admin/internal/data/db"
	"github.com/claon/claon-admin/internal/observability"
	"github.com/claon/claon-admin/internal/platform/gcp"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	LogMode string `envconfig:"LOG_MODE" default:"development"`

	JWTSecretKey   string        `envconfig:"JWT_SECRET_KEY" default:"defaultsecret"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"1h"`

	Postgres PostgresConfig `ignored:"true"`

	RedisAddr           string        `envconfig:"REDIS_ADDR"`
	RedisPassword       string        `envconfig:"REDIS_PASSWORD"`
	RedisDB             int           `envconfig:"REDIS_DB" default:"0"`
	CenterNameCacheTTL  time.Duration `envconfig:"CENTER_NAME_CACHE_TTL" default:"10m"`
	UploadBucketName    string        `envconfig:"UPLOAD_GCS_BUCKET_NAME"`
	UploadCDNDomain     string        `envconfig:"UPLOAD_CDN_DOMAIN"`
	StorageEmulatorHost string        `envconfig:"STORAGE_EMULATOR_HOST"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"50"`
	MaxPageSize     int `envconfig:"MAX_PAGE_SIZE" default:"100"`

	Otel OtelConfig `ignored:"true"`
}

// PostgresConfig is read from POSTGRES_* variables.
type PostgresConfig struct {
	Host            string `default:"localhost"`
	Port            int    `default:"5432"`
	User            string `default:"postgres"`
	Password        string
	Name            string        `default:"claon"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns    int           `split_words:"true" default:"20"`
	MaxIdleConns    int           `split_words:"true" default:"5"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"30m"`
}

// OtelConfig is read from OTEL_* variables.
type OtelConfig struct {
	Enabled     bool    `default:"false"`
	ServiceName string  `split_words:"true" default:"claon-admin"`
	Environment string  `default:"local"`
	Version     string  `envconfig:"SERVICE_VERSION"`
	Endpoint    string  `envconfig:"EXPORTER_OTLP_ENDPOINT"`
	Headers     string  `envconfig:"EXPORTER_OTLP_HEADERS"`
	Insecure    bool    `envconfig:"EXPORTER_OTLP_INSECURE" default:"false"`
	SampleRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := envconfig.Process("POSTGRES", &cfg.Postgres); err != nil {
		return Config{}, fmt.Errorf("load postgres config: %w", err)
	}
	if err := envconfig.Process("OTEL", &cfg.Otel); err != nil {
		return Config{}, fmt.Errorf("load otel config: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return Config{}, fmt.Errorf("load config: JWT_SECRET_KEY is empty")
	}
	if cfg.DefaultPageSize <= 0 || cfg.MaxPageSize < cfg.DefaultPageSize {
		return Config{}, fmt.Errorf("load config: invalid page sizes default=%d max=%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	return cfg, nil
}

func (c Config) Address() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	return ":" + port
}

func (c PostgresConfig) toDB() db.PostgresConfig {
	return db.PostgresConfig{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Name:            c.Name,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}
}

func (c OtelConfig) toObservability() observability.OtelConfig {
	return observability.OtelConfig(c)
}

func (c Config) bucketConfig() gcp.BucketConfig {
	return gcp.BucketConfig{
		Name:         c.UploadBucketName,
		CDNDomain:    c.UploadCDNDomain,
		EmulatorHost: c.StorageEmulatorHost,
	}
}

// tracingServiceName is empty when tracing is off so the router skips otelgin.
func (c Config) tracingServiceName() string {
	if !c.Otel.Enabled {
		return ""
	}
	return c.Otel.ServiceName
}
