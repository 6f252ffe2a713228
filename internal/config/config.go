package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Wikipedia struct {
		// BaseURL is the MediaWiki action API endpoint. When empty it is
		// derived from Language.
		BaseURL          string `mapstructure:"base_url"`
		Language         string `mapstructure:"language"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
		SearchLimit      int    `mapstructure:"search_limit"`
		RetryMaxAttempts int    `mapstructure:"retry_max_attempts"`
		RetryBaseDelayMs int    `mapstructure:"retry_base_delay_ms"`
		CacheTTLSeconds  int    `mapstructure:"cache_ttl_seconds"`
		UserAgent        string `mapstructure:"user_agent"`
	} `mapstructure:"wikipedia"`

	Suggest struct {
		TopN           int `mapstructure:"topn"`
		BootstrapSize  int `mapstructure:"bootstrap_size"`
		MaxConcurrency int `mapstructure:"max_concurrency"`
	} `mapstructure:"suggest"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetEnvPrefix("WIKILABELS")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults and env vars are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Wikipedia.BaseURL == "" {
		config.Wikipedia.BaseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", config.Wikipedia.Language)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("wikipedia.language", "en")
	viper.SetDefault("wikipedia.timeout_seconds", 10)
	viper.SetDefault("wikipedia.search_limit", 10)
	viper.SetDefault("wikipedia.retry_max_attempts", 3)
	viper.SetDefault("wikipedia.retry_base_delay_ms", 200)
	viper.SetDefault("wikipedia.cache_ttl_seconds", 300)
	viper.SetDefault("wikipedia.user_agent", "wikilabels/0.1 (topic label suggestion)")
	viper.SetDefault("suggest.topn", 3)
	viper.SetDefault("suggest.bootstrap_size", 3)
	viper.SetDefault("suggest.max_concurrency", 4)
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
}
