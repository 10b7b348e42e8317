package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	LogLevel    string         `mapstructure:"log_level"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Tracing     TracingConfig  `mapstructure:"tracing"`
	Report      ReportConfig   `mapstructure:"report"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Host            string   `mapstructure:"host"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min"`
}

type DatabaseConfig struct {
	URL                  string   `mapstructure:"url"`
	Host                 string   `mapstructure:"host"`
	Port                 int      `mapstructure:"port"`
	Name                 string   `mapstructure:"name"`
	User                 string   `mapstructure:"user"`
	Password             string   `mapstructure:"password"`
	SSLMode              string   `mapstructure:"ssl_mode"`
	MaxOpenConns         int      `mapstructure:"max_open_conns"`
	MaxIdleConns         int      `mapstructure:"max_idle_conns"`
	ConnMaxLifetime      int      `mapstructure:"conn_max_lifetime"`
	ReplicaURLs          []string `mapstructure:"replica_urls"`
	QueryTimeout         int      `mapstructure:"query_timeout"`           // seconds
	SlowQueryThresholdMs int      `mapstructure:"slow_query_threshold_ms"` // milliseconds
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig controls the Redis-backed report cache and its warmer
type CacheConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TTLSeconds   int    `mapstructure:"ttl_seconds"`
	KeyPrefix    string `mapstructure:"key_prefix"`
	WarmSchedule string `mapstructure:"warm_schedule"` // cron expression
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Insecure    bool    `mapstructure:"insecure"`
}

// ReportConfig controls how derived portfolio figures are presented
type ReportConfig struct {
	Timezone string `mapstructure:"timezone"`
	Currency string `mapstructure:"currency"`
}

// Location resolves the report timezone, falling back to UTC
func (r ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil || r.Timezone == "" {
		return time.UTC
	}
	return loc
}

// QueryTimeoutDuration returns the per-query timeout
func (d DatabaseConfig) QueryTimeoutDuration() time.Duration {
	return time.Duration(d.QueryTimeout) * time.Second
}

// SlowQueryThreshold returns the duration above which queries are logged
func (d DatabaseConfig) SlowQueryThreshold() time.Duration {
	return time.Duration(d.SlowQueryThresholdMs) * time.Millisecond
}

// TTL returns the report cache entry lifetime
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Addr returns host:port for the Redis client
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	overrideFromEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Database.URL == "" {
		config.Database.URL = fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			config.Database.User,
			config.Database.Password,
			config.Database.Host,
			config.Database.Port,
			config.Database.Name,
			config.Database.SSLMode,
		)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	// Server defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit_per_min", 600)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "fund_insight")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.replica_urls", []string{})
	v.SetDefault("database.query_timeout", 5)
	v.SetDefault("database.slow_query_threshold_ms", 200)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// Report cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("cache.key_prefix", "fund_insight:report:")
	v.SetDefault("cache.warm_schedule", "*/5 * * * *")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.service_name", "fund-insight-service")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("tracing.insecure", true)

	// Report defaults
	v.SetDefault("report.timezone", "UTC")
	v.SetDefault("report.currency", "INR")
}

func overrideFromEnv(v *viper.Viper) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.port", p)
		}
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		v.Set("environment", env)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		v.Set("log_level", strings.ToLower(level))
	}

	// Database
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}
	if replicas := os.Getenv("DATABASE_REPLICA_URLS"); replicas != "" {
		v.Set("database.replica_urls", splitList(replicas))
	}

	// Redis
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		v.Set("redis.host", redisHost)
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		v.Set("redis.password", redisPassword)
	}
	if cacheEnabled := os.Getenv("CACHE_ENABLED"); cacheEnabled != "" {
		if enabled, err := strconv.ParseBool(cacheEnabled); err == nil {
			v.Set("cache.enabled", enabled)
		}
	}

	// Tracing: an explicit collector endpoint switches export on
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		v.Set("tracing.endpoint", endpoint)
		v.Set("tracing.enabled", true)
	}

	if tz := os.Getenv("REPORT_TIMEZONE"); tz != "" {
		v.Set("report.timezone", tz)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Database.URL == "" && (config.Database.Host == "" || config.Database.Name == "") {
		return fmt.Errorf("database configuration is incomplete")
	}

	if config.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive, got %d", config.Server.Port)
	}

	if _, err := time.LoadLocation(config.Report.Timezone); err != nil {
		return fmt.Errorf("invalid report timezone %q: %w", config.Report.Timezone, err)
	}

	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be within [0, 1]")
	}

	return nil
}
