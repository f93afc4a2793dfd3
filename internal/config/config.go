package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Monday         Monday         `mapstructure:",squash"`
	Harvest        Harvest        `mapstructure:",squash"`
	Xero           Xero           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Monday holds the monday.com GraphQL API settings. The board referenced by
// BoardID is the deals pipeline.
type Monday struct {
	URL     string `mapstructure:"monday_url"`
	Token   string `mapstructure:"monday_api_token"`
	BoardID string `mapstructure:"monday_board_id"`
}

// Harvest holds the Harvest time-tracking API settings. LookbackDays bounds
// the time-entry window pulled on each refresh.
type Harvest struct {
	URL          string `mapstructure:"harvest_url"`
	Token        string `mapstructure:"harvest_api_token"`
	AccountID    string `mapstructure:"harvest_account_id"`
	LookbackDays int    `mapstructure:"harvest_lookback_days"`
}

// Xero holds the Xero accounting API settings.
type Xero struct {
	URL      string `mapstructure:"xero_url"`
	Token    string `mapstructure:"xero_access_token"`
	TenantID string `mapstructure:"xero_tenant_id"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

// Configured reports whether the monday credentials are present.
func (m Monday) Configured() bool {
	return m.Token != "" && m.BoardID != ""
}

// Configured reports whether the Harvest credentials are present.
func (h Harvest) Configured() bool {
	return h.Token != "" && h.AccountID != ""
}

// Configured reports whether the Xero credentials are present.
func (x Xero) Configured() bool {
	return x.Token != "" && x.TenantID != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MONDAY_URL", "https://api.monday.com/v2")
	viper.SetDefault("MONDAY_API_TOKEN", "")
	viper.SetDefault("MONDAY_BOARD_ID", "")

	viper.SetDefault("HARVEST_URL", "https://api.harvestapp.com/v2")
	viper.SetDefault("HARVEST_API_TOKEN", "")
	viper.SetDefault("HARVEST_ACCOUNT_ID", "")
	viper.SetDefault("HARVEST_LOOKBACK_DAYS", 365)

	viper.SetDefault("XERO_URL", "https://api.xero.com/api.xro/2.0")
	viper.SetDefault("XERO_ACCESS_TOKEN", "")
	viper.SetDefault("XERO_TENANT_ID", "")

	viper.SetDefault("AUTH_SECRET", "change_me_in_production")

	// Dataset refresh defaults: 6am daily, disabled until enabled by config.
	viper.SetDefault("DATASET_REFRESH_CRON", "0 6 * * *")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file from the usual locations using godotenv.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
