package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required")
	ErrUnknownDBDriver  = errors.New("unknown DB_DRIVER")
)

// Storage drivers accepted by DB_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	CORS  CORSConfig
	Admin AdminConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Driver   string
	MongoURI string
	Name     string
	Host     string
	Port     string
	User     string
	Password string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured. Without one, sessions
// are stateless and logout cannot revoke a token.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AdminConfig describes the account created at startup when no admin exists.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			MongoURI: v.GetString("MONGODB_URI"),
			Name:     v.GetString("DB_NAME"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		Admin: AdminConfig{
			Name:     v.GetString("ADMIN_NAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations the server cannot boot with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}

	switch c.DB.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDBDriver, c.DB.Driver)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "4000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "hms")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_EXPIRY", "168h")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("ADMIN_EMAIL", "admin@hms.local")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
