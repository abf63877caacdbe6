package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Backends  BackendsConfig  `mapstructure:"backends"`
	Execution ExecutionConfig `mapstructure:"execution"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	AdminPort   int    `mapstructure:"admin_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	SecretKey   string `mapstructure:"secret_key"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BackendsConfig holds per-vendor credentials and endpoints for the model
// backends under test. None of these values are computed by the core.
type BackendsConfig struct {
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	GoogleAPIKey    string `mapstructure:"google_api_key"`
	OllamaBaseURL   string `mapstructure:"ollama_base_url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	MaxRetries      int    `mapstructure:"max_retries"`
}

type ExecutionConfig struct {
	DefaultVariantsPerTechnique int `mapstructure:"default_variants_per_technique"`
	MaxBaselinePrompts          int `mapstructure:"max_baseline_prompts"`
	MaxConcurrentRuns           int `mapstructure:"max_concurrent_runs"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Host == "" {
		globalConfig.Server.Host = "0.0.0.0"
	}
	if globalConfig.Server.AdminPort == 0 {
		globalConfig.Server.AdminPort = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Backends.OllamaBaseURL == "" {
		globalConfig.Backends.OllamaBaseURL = "http://localhost:11434"
	}
	if globalConfig.Backends.TimeoutSeconds == 0 {
		globalConfig.Backends.TimeoutSeconds = 30
	}
	if globalConfig.Backends.MaxRetries == 0 {
		globalConfig.Backends.MaxRetries = 3
	}
	if globalConfig.Execution.DefaultVariantsPerTechnique == 0 {
		globalConfig.Execution.DefaultVariantsPerTechnique = 2
	}
	if globalConfig.Execution.MaxBaselinePrompts == 0 {
		globalConfig.Execution.MaxBaselinePrompts = 50
	}
	if globalConfig.Execution.MaxConcurrentRuns == 0 {
		globalConfig.Execution.MaxConcurrentRuns = 10
	}
}

func GetConfig() *Config {
	return &globalConfig
}
