package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultConfigDir      = ".sharenotes"
	defaultPageSize       = 10
	defaultDebounceMillis = 300
	defaultTimeoutSeconds = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerAddress  string `mapstructure:"server_address"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	TokenPath      string `mapstructure:"token_path"`
	ExportDir      string `mapstructure:"export_dir"`
	PageSize       int    `mapstructure:"page_size"`
	DebounceMillis int    `mapstructure:"debounce_millis"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
	EnableTLS      bool   `mapstructure:"enable_tls"`
}

// MustLoad loads the client configuration from the environment, an optional
// .env file and built-in defaults. It panics on invalid configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config error: %v", err))
	}
	return cfg
}

// Load is MustLoad without the panic, for tests and embedding.
func Load() (*Config, error) {
	// .env is optional; look next to the binary first, then one level up.
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "could not load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("DEBOUNCE_MILLIS", defaultDebounceMillis)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("could not create config directory: %w", err)
	}

	exportDir := viper.GetString("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "."
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		TokenPath:      filepath.Join(configDir, "token"),
		ExportDir:      exportDir,
		PageSize:       viper.GetInt("PAGE_SIZE"),
		DebounceMillis: viper.GetInt("DEBOUNCE_MILLIS"),
		RequestTimeout: viper.GetInt("REQUEST_TIMEOUT_SECONDS"),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive")
	}
	if c.DebounceMillis <= 0 {
		return fmt.Errorf("debounce_millis must be positive")
	}
	return nil
}

// DebounceWindow returns the search settling window as a duration.
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// Timeout returns the per-request timeout for remote calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// IsProd reports whether the prod environment is configured.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether the local environment is configured.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
