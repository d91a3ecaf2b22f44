package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port       string
	Env        string
	Timezone   string
	CORSOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SchedulerConfig holds the automatic appointment scheduling policy.
// Slots are whole hours from FirstHour to LastHour inclusive, searched from
// LeadDays after today for HorizonDays additional days.
type SchedulerConfig struct {
	LeadDays    int
	HorizonDays int
	FirstHour   int
	LastHour    int
	MaxAttempts int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func LoadConfig() (*Config, error) {
	setDefaults()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, plain environment variables are enough in containers
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			Timezone:   viper.GetString("APP_TIMEZONE"),
			CORSOrigin: viper.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Scheduler: SchedulerConfig{
			LeadDays:    viper.GetInt("SCHEDULER_LEAD_DAYS"),
			HorizonDays: viper.GetInt("SCHEDULER_HORIZON_DAYS"),
			FirstHour:   viper.GetInt("SCHEDULER_FIRST_HOUR"),
			LastHour:    viper.GetInt("SCHEDULER_LAST_HOUR"),
			MaxAttempts: viper.GetInt("SCHEDULER_MAX_ATTEMPTS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("APP_CORS_ORIGIN", "*")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SCHEDULER_LEAD_DAYS", 3)
	viper.SetDefault("SCHEDULER_HORIZON_DAYS", 60)
	viper.SetDefault("SCHEDULER_FIRST_HOUR", 9)
	viper.SetDefault("SCHEDULER_LAST_HOUR", 16)
	viper.SetDefault("SCHEDULER_MAX_ATTEMPTS", 3)
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1")
	}
	return nil
}

func (s SchedulerConfig) Validate() error {
	if s.FirstHour < 0 || s.LastHour > 23 || s.FirstHour > s.LastHour {
		return fmt.Errorf("invalid scheduler hours %d..%d", s.FirstHour, s.LastHour)
	}
	if s.LeadDays < 0 || s.HorizonDays < 0 {
		return fmt.Errorf("invalid scheduler window: lead=%d horizon=%d", s.LeadDays, s.HorizonDays)
	}
	if s.MaxAttempts < 1 {
		return fmt.Errorf("SCHEDULER_MAX_ATTEMPTS must be at least 1, got %d", s.MaxAttempts)
	}
	return nil
}

// Location resolves App.Timezone; Validate guarantees it loads.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN builds the GORM/libpq style connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// MigrateURL builds the URL understood by the golang-migrate pgx/v5 driver.
func (c DBConfig) MigrateURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
