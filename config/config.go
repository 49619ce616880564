package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything read from the environment (.env for development)
type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	APIPort  string `mapstructure:"API_PORT"`
	CertFile string `mapstructure:"APP_CERTFILE"`
	KeyFile  string `mapstructure:"APP_KEYFILE"`

	MongoURI string `mapstructure:"MONGODB_URI"`
	DBName   string `mapstructure:"DB_NAME"`

	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	UseAnalytics    string `mapstructure:"USE_ANALYTICS"`
	CacheHost       string `mapstructure:"CACHE_HOST"`
	CachePort       string `mapstructure:"CACHE_PORT"`
	CachePass       string `mapstructure:"CACHE_PASS"`
	AnalyticsDB     int    `mapstructure:"ANALYTICS_DB"`
	AnalyticsURL    string `mapstructure:"ANALYTICS_URL"`
	AnalyticsToken  string `mapstructure:"ANALYTICS_TOKEN"`
	AnalyticsOrg    string `mapstructure:"ANALYTICS_ORG"`
	AnalyticsBucket string `mapstructure:"ANALYTICS_BUCKET"`
}

// application environments
const (
	EnvDEV = "DEV"
	EnvPRD = "PRD"
)

var defaults = map[string]interface{}{
	"APP_ENV":          EnvDEV,
	"API_PORT":         "8000",
	"APP_CERTFILE":     "",
	"APP_KEYFILE":      "",
	"MONGODB_URI":      "mongodb://localhost:27017",
	"DB_NAME":          "summoners-school",
	"CORS_ORIGIN":      "*",
	"USE_ANALYTICS":    "NO",
	"CACHE_HOST":       "localhost",
	"CACHE_PORT":       "6379",
	"CACHE_PASS":       "",
	"ANALYTICS_DB":     0,
	"ANALYTICS_URL":    "",
	"ANALYTICS_TOKEN":  "",
	"ANALYTICS_ORG":    "",
	"ANALYTICS_BUCKET": "",
}

// Load reads .env (if present) and the process environment
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		// production takes its settings from the real environment only
		if os.Getenv("APP_ENV") != EnvPRD && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	if strings.TrimSpace(c.MongoURI) == "" {
		return errors.New("MONGODB_URI must be set")
	}
	switch c.AppEnv {
	case EnvDEV:
	case EnvPRD:
		if c.CertFile == "" || c.KeyFile == "" {
			return errors.New("APP_CERTFILE and APP_KEYFILE are required in PRD")
		}
	default:
		return fmt.Errorf("APP_ENV must be %s or %s, got %q", EnvDEV, EnvPRD, c.AppEnv)
	}
	return nil
}

// AnalyticsEnabled reports whether visits are tracked
func (c Config) AnalyticsEnabled() bool {
	return c.UseAnalytics == "YES"
}

// CacheAddr is the redis address of the visit counter
func (c Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// Origins splits CORS_ORIGIN into the allowed origins
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
