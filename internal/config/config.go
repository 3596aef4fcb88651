package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LedgerConfig contains the blockchain node and contract settings
type LedgerConfig struct {
	RPCURL       string `yaml:"rpc_url"`
	ContractHash string `yaml:"contract_hash"`
	// Confirmation polling
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	WaitTimeoutSeconds  int `yaml:"wait_timeout_seconds"`
}

// SessionConfig contains session cookie settings
type SessionConfig struct {
	Secret        string `yaml:"secret"`
	TTLMinutes    int    `yaml:"ttl_minutes"`
	CookieName    string `yaml:"cookie_name"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	LedgerHealthCheck  string `yaml:"ledger_health_check"`
	PendingWorkSummary string `yaml:"pending_work_summary"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Ledger
	if val := os.Getenv("LEDGER_RPC_URL"); val != "" {
		c.Ledger.RPCURL = val
	}
	if val := os.Getenv("LEDGER_CONTRACT_HASH"); val != "" {
		c.Ledger.ContractHash = val
	}

	// Session
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Session.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Ledger validation
	if c.Ledger.RPCURL == "" {
		return fmt.Errorf("ledger rpc_url is required")
	}
	if c.Ledger.ContractHash == "" {
		return fmt.Errorf("ledger contract_hash is required")
	}
	if c.Ledger.PollIntervalSeconds <= 0 {
		c.Ledger.PollIntervalSeconds = 2
	}
	if c.Ledger.WaitTimeoutSeconds <= 0 {
		c.Ledger.WaitTimeoutSeconds = 120
	}

	// Session validation
	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 12 * 60
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "session"
	}

	// Scheduler defaults
	if c.Scheduler.LedgerHealthCheck == "" {
		c.Scheduler.LedgerHealthCheck = "0 */5 * * * *" // every 5 minutes
	}
	if c.Scheduler.PendingWorkSummary == "" {
		c.Scheduler.PendingWorkSummary = "0 0 6 * * *" // 6 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LedgerPollInterval returns the confirmation polling interval
func (c *Config) LedgerPollInterval() time.Duration {
	return time.Duration(c.Ledger.PollIntervalSeconds) * time.Second
}

// LedgerWaitTimeout returns the confirmation wait timeout
func (c *Config) LedgerWaitTimeout() time.Duration {
	return time.Duration(c.Ledger.WaitTimeoutSeconds) * time.Second
}

// SessionTTL returns the session cookie lifetime
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}
