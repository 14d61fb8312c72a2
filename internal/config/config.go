// Package config loads application configuration from file and environment
// and owns global logger initialization.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Campaign CampaignConfig `yaml:"campaign" mapstructure:"campaign"`
	HubSpot  HubSpotConfig  `yaml:"hubspot" mapstructure:"hubspot"`
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// CampaignConfig holds the default campaign settings; flags override them
// per invocation.
type CampaignConfig struct {
	IndustryFocus []string `yaml:"industry_focus" mapstructure:"industry_focus"`
	Regions       []string `yaml:"regions" mapstructure:"regions"`
	ProductNeeds  []string `yaml:"product_needs" mapstructure:"product_needs"`
	MinScore      int      `yaml:"min_score" mapstructure:"min_score"`
	LeadSource    string   `yaml:"lead_source" mapstructure:"lead_source"`
}

// HubSpotConfig holds HubSpot private-app credentials and pacing.
type HubSpotConfig struct {
	Token          string  `yaml:"token" mapstructure:"token"`
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// SearchConfig holds Google Programmable Search credentials.
type SearchConfig struct {
	Key        string `yaml:"key" mapstructure:"key"`
	CX         string `yaml:"cx" mapstructure:"cx"`
	BaseURL    string `yaml:"base_url" mapstructure:"base_url"`
	MaxResults int    `yaml:"max_results" mapstructure:"max_results"`
}

// ServerConfig configures the scoring webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("campaign.industry_focus", []string{"Chemicals", "Agrochemicals", "Food & Beverage", "Pharma", "Oil & Gas"})
	v.SetDefault("campaign.regions", []string{"India", "Middle East", "SE Asia", "South America", "Italy", "Bulgaria"})
	v.SetDefault("campaign.product_needs", []string{"Vacuum Systems", "Evaporation", "Condensation", "Distillation", "Scrubbing"})
	v.SetDefault("campaign.min_score", 65)
	v.SetDefault("campaign.lead_source", "Indiamart")
	v.SetDefault("hubspot.token", "")
	v.SetDefault("hubspot.base_url", "https://api.hubapi.com")
	v.SetDefault("hubspot.requests_per_sec", 5.0)
	v.SetDefault("search.key", "")
	v.SetDefault("search.cx", "")
	v.SetDefault("search.base_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("search.max_results", 20)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
