package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CacheDriverMemory   = "memory"
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
	CacheDriverSQLite   = "sqlite"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Fred            Fred            `mapstructure:",squash"`
	EIA             EIA             `mapstructure:",squash"`
	HUD             HUD             `mapstructure:",squash"`
	FiscalData      FiscalData      `mapstructure:",squash"`
	Anthropic       Anthropic       `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Housing         Housing         `mapstructure:",squash"`
	BriefingSync    BriefingSync    `mapstructure:",squash"`
	DashboardWarmup DashboardWarmup `mapstructure:",squash"`
	CachePurge      CachePurge      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Fred struct {
	APIKey  string        `mapstructure:"fred_api_key"`
	BaseURL string        `mapstructure:"fred_base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"fred_timeout" validate:"gt=0"`
}

type EIA struct {
	APIKey  string        `mapstructure:"eia_api_key"`
	BaseURL string        `mapstructure:"eia_base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"eia_timeout" validate:"gt=0"`
}

type HUD struct {
	APIKey  string        `mapstructure:"hud_api_key"`
	BaseURL string        `mapstructure:"hud_base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"hud_timeout" validate:"gt=0"`
}

type FiscalData struct {
	BaseURL string        `mapstructure:"fiscal_data_base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"fiscal_data_timeout" validate:"gt=0"`
}

type Anthropic struct {
	APIKey    string        `mapstructure:"anthropic_api_key"`
	BaseURL   string        `mapstructure:"anthropic_base_url"`
	Model     string        `mapstructure:"anthropic_model" validate:"required"`
	MaxTokens int64         `mapstructure:"anthropic_max_tokens" validate:"gt=0"`
	Timeout   time.Duration `mapstructure:"anthropic_timeout" validate:"gt=0"`
}

type Cache struct {
	Driver        string        `mapstructure:"cache_driver" validate:"oneof=memory redis postgres sqlite"`
	TTL           time.Duration `mapstructure:"cache_ttl" validate:"gt=0"`
	PricesTTL     time.Duration `mapstructure:"cache_prices_ttl" validate:"gt=0"`
	BriefingTTL   time.Duration `mapstructure:"cache_briefing_ttl" validate:"gt=0"`
	MaxEntries    int           `mapstructure:"cache_max_entries"`
	KeyPrefix     string        `mapstructure:"cache_key_prefix"`
	RedisAddr     string        `mapstructure:"redis_addr" validate:"required_if=Driver redis"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DatabaseURL   string        `mapstructure:"database_url" validate:"required_if=Driver postgres"`
	SQLitePath    string        `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Housing holds the assumptions behind the affordability figures.
type Housing struct {
	ReferenceHomePrice float64 `mapstructure:"housing_reference_home_price" validate:"gt=0"`
	DownPaymentPct     float64 `mapstructure:"housing_down_payment_pct" validate:"gte=0,lt=100"`
}

type BriefingSync struct {
	CronSchedule string `mapstructure:"briefing_cron"`
	Enabled      bool   `mapstructure:"briefing_sync_enabled"`
}

type DashboardWarmup struct {
	CronSchedule string `mapstructure:"dashboard_warmup_cron"`
	Enabled      bool   `mapstructure:"dashboard_warmup_enabled"`
}

type CachePurge struct {
	CronSchedule string `mapstructure:"cache_purge_cron"`
	Enabled      bool   `mapstructure:"cache_purge_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("FRED_API_KEY", "")
	viper.SetDefault("FRED_BASE_URL", "https://api.stlouisfed.org/fred")
	viper.SetDefault("FRED_TIMEOUT", "10s")

	viper.SetDefault("EIA_API_KEY", "")
	viper.SetDefault("EIA_BASE_URL", "https://api.eia.gov/v2")
	viper.SetDefault("EIA_TIMEOUT", "10s")

	viper.SetDefault("HUD_API_KEY", "")
	viper.SetDefault("HUD_BASE_URL", "https://www.huduser.gov/hudapi/public")
	viper.SetDefault("HUD_TIMEOUT", "10s")

	viper.SetDefault("FISCAL_DATA_BASE_URL", "https://api.fiscaldata.treasury.gov/services/api/fiscal_service")
	viper.SetDefault("FISCAL_DATA_TIMEOUT", "10s")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 500)
	viper.SetDefault("ANTHROPIC_TIMEOUT", "60s")

	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_PRICES_TTL", "1h")
	viper.SetDefault("CACHE_BRIEFING_TTL", "48h")
	viper.SetDefault("CACHE_MAX_ENTRIES", 1024)
	viper.SetDefault("CACHE_KEY_PREFIX", "econ")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "econ-cache.db")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("HOUSING_REFERENCE_HOME_PRICE", 400000)
	viper.SetDefault("HOUSING_DOWN_PAYMENT_PCT", 20)

	viper.SetDefault("BRIEFING_CRON", "0 6 * * *") // every day at 06:00 UTC
	viper.SetDefault("BRIEFING_SYNC_ENABLED", true)

	viper.SetDefault("DASHBOARD_WARMUP_CRON", "*/5 * * * *")
	viper.SetDefault("DASHBOARD_WARMUP_ENABLED", false)

	viper.SetDefault("CACHE_PURGE_CRON", "17 * * * *") // hourly
	viper.SetDefault("CACHE_PURGE_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: viper could not read .env, relying on the environment: ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	config.Cache.Driver = strings.ToLower(strings.TrimSpace(config.Cache.Driver))
	for i, origin := range config.Server.AllowedOrigins {
		config.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the fields that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "config: invalid")
	}
	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: loaded .env from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
