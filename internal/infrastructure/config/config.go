package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Version is overridden at build time through -ldflags.
var Version = "dev"

// Config holds all configuration for our application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Version string `mapstructure:"version"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	LogSQL   bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LedgerConfig holds the smart-contract ledger settings. The ledger is
// disabled when Endpoint is empty.
type LedgerConfig struct {
	Endpoint        string        `mapstructure:"endpoint"`
	ContractAddress string        `mapstructure:"contract_address"`
	ABI             string        `mapstructure:"abi"`
	ABIFile         string        `mapstructure:"abi_file"`
	Method          string        `mapstructure:"method"`
	PrivateKey      string        `mapstructure:"private_key"`
	Account         string        `mapstructure:"account"`
	ChainID         int64         `mapstructure:"chain_id"`
	GasLimit        uint64        `mapstructure:"gas_limit"`
	GasPriceGwei    int64         `mapstructure:"gas_price_gwei"`
	MaxRetries      int           `mapstructure:"max_retries"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	CallTimeout     time.Duration `mapstructure:"call_timeout"`
	QueueSize       int           `mapstructure:"queue_size"`
}

// Enabled reports whether ledger notifications should be sent.
func (l LedgerConfig) Enabled() bool { return strings.TrimSpace(l.Endpoint) != "" }

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.App.Version == "" {
		config.App.Version = Version
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "")
	viper.SetDefault("server.http_port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.path", "luci.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "luci")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.log_sql", false)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	// Ledger defaults
	viper.SetDefault("ledger.method", "update_member_msg_count")
	viper.SetDefault("ledger.gas_limit", 200000)
	viper.SetDefault("ledger.gas_price_gwei", 40)
	viper.SetDefault("ledger.max_retries", 10)
	viper.SetDefault("ledger.poll_interval", time.Second)
	viper.SetDefault("ledger.call_timeout", 30*time.Second)
	viper.SetDefault("ledger.queue_size", 256)
}

// DatabaseDriver returns the normalized database/sql driver name.
func (c *Config) DatabaseDriver() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.Database.Driver)) {
	case "", "sqlite3":
		return "sqlite3", nil
	case "sqlite":
		return "sqlite", nil
	case "postgres", "postgresql", "pgx":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the connection string for the configured driver.
func (c *Config) DatabaseURL() (string, error) {
	if dsn := strings.TrimSpace(c.Database.DSN); dsn != "" {
		return dsn, nil
	}
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}
	switch driver {
	case "postgres":
		u := &url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.Database.User, c.Database.Password),
			Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
			Path:     c.Database.Name,
			RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
		}
		return u.String(), nil
	case "sqlite":
		if c.Database.Path == "" {
			return "", errors.New("database.path is required for sqlite")
		}
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.Database.Path), nil
	default:
		if c.Database.Path == "" {
			return "", errors.New("database.path is required for sqlite3")
		}
		return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", c.Database.Path), nil
	}
}
