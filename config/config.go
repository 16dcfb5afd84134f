package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Access AccessConfig
	Policy PolicyConfig
	Auth   AuthConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AccessConfig controls the role gate in front of mutating routes.
// Mode is one of "off", "header" or "token".
type AccessConfig struct {
	Mode       string
	RoleHeader string
}

// PolicyConfig names the behaviour of relationships and the appointment
// status lifecycle.
type PolicyConfig struct {
	PatientDelete    string
	DoctorDelete     string
	StatusTransition string
}

type AuthConfig struct {
	DemoPassword string
}

const defaultJWTSecret = "dev-secret-change-me"

const (
	AccessModeOff    = "off"
	AccessModeHeader = "header"
	AccessModeToken  = "token"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "clinic")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ACCESS_EXPIRY", "1h")

	v.SetDefault("ACCESS_MODE", AccessModeHeader)
	v.SetDefault("ACCESS_ROLE_HEADER", "Role")

	v.SetDefault("PATIENT_DELETE_POLICY", "cascade")
	v.SetDefault("DOCTOR_DELETE_POLICY", "nullify")
	v.SetDefault("STATUS_TRANSITION_POLICY", "permissive")

	v.SetDefault("AUTH_DEMO_PASSWORD", "password123")
}

// LoadConfig reads configuration from an optional .env file in the working
// directory, overridden by environment variables.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Access: AccessConfig{
			Mode:       strings.ToLower(v.GetString("ACCESS_MODE")),
			RoleHeader: v.GetString("ACCESS_ROLE_HEADER"),
		},
		Policy: PolicyConfig{
			PatientDelete:    strings.ToLower(v.GetString("PATIENT_DELETE_POLICY")),
			DoctorDelete:     strings.ToLower(v.GetString("DOCTOR_DELETE_POLICY")),
			StatusTransition: strings.ToLower(v.GetString("STATUS_TRANSITION_POLICY")),
		},
		Auth: AuthConfig{
			DemoPassword: v.GetString("AUTH_DEMO_PASSWORD"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Access.Mode {
	case AccessModeOff, AccessModeHeader, AccessModeToken:
	default:
		return fmt.Errorf("unknown ACCESS_MODE %q", c.Access.Mode)
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
