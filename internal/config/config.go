package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	FundAPI  FundAPIConfig  `yaml:"fund_api"`
	Logging  LoggingConfig  `yaml:"logging"`
	Rate     RateConfig     `yaml:"rate_limit"`
}

type AppConfig struct {
	Name  string `yaml:"name"`
	Env   string `yaml:"env"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
}

// FundAPIConfig configures the external fund-data API client.
type FundAPIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	ProbeTimeout    time.Duration `yaml:"probe_timeout"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	AvailabilityTTL time.Duration `yaml:"availability_ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RateConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Load reads the YAML config file, then applies defaults and
// environment overrides. A missing file is not an error; the
// environment alone can configure the service.
func Load(path string) (*Config, error) {
	var cfg Config

	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.FundAPI.BaseURL == "" {
		c.FundAPI.BaseURL = "https://api.mfapi.in"
	}
	if c.FundAPI.ReadTimeout == 0 {
		c.FundAPI.ReadTimeout = 10 * time.Second
	}
	if c.FundAPI.ProbeTimeout == 0 {
		c.FundAPI.ProbeTimeout = 5 * time.Second
	}
	if c.FundAPI.CacheTTL == 0 {
		c.FundAPI.CacheTTL = 6 * time.Hour
	}
	if c.FundAPI.AvailabilityTTL == 0 {
		c.FundAPI.AvailabilityTTL = 5 * time.Minute
	}
	if c.Rate.RequestsPerSecond == 0 {
		c.Rate.RequestsPerSecond = 10
	}
	if c.Rate.Burst == 0 {
		c.Rate.Burst = 20
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) loadFromEnv() error {
	if env := os.Getenv("APP_ENV"); env != "" {
		c.App.Env = env
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.App.Port = p
		}
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		dbConfig, err := parseDatabaseURL(url)
		if err != nil {
			return err
		}
		c.Database = *dbConfig
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		host, port, ok := strings.Cut(addr, ":")
		if !ok {
			return fmt.Errorf("invalid REDIS_ADDR: %s", addr)
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_ADDR port: %v", err)
		}
		c.Redis.Enabled = true
		c.Redis.Host = host
		c.Redis.Port = p
	}

	if base := os.Getenv("FUND_API_BASE_URL"); base != "" {
		c.FundAPI.BaseURL = base
	}

	return nil
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.App.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.FundAPI.BaseURL == "" {
		return fmt.Errorf("fund API base URL is required")
	}

	return nil
}

func parseDatabaseURL(url string) (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{
		SSLMode: "disable",
	}

	url = strings.TrimPrefix(url, "postgresql://")
	url = strings.TrimPrefix(url, "postgres://")

	parts := strings.Split(url, "@")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid database URL format")
	}

	credentials := strings.Split(parts[0], ":")
	if len(credentials) != 2 {
		return nil, fmt.Errorf("invalid credentials format")
	}
	cfg.User = credentials[0]
	cfg.Password = credentials[1]

	hostInfo := strings.Split(parts[1], "/")
	if len(hostInfo) != 2 {
		return nil, fmt.Errorf("invalid host info format")
	}

	hostPort := strings.Split(hostInfo[0], ":")
	if len(hostPort) != 2 {
		return nil, fmt.Errorf("invalid host/port format")
	}
	cfg.Host = hostPort[0]
	port, err := strconv.Atoi(hostPort[1])
	if err != nil {
		return nil, fmt.Errorf("invalid port number: %v", err)
	}
	cfg.Port = port

	dbNameOpts := strings.Split(hostInfo[1], "?")
	cfg.Name = dbNameOpts[0]

	if len(dbNameOpts) > 1 {
		opts := strings.Split(dbNameOpts[1], "&")
		for _, opt := range opts {
			kv := strings.Split(opt, "=")
			if len(kv) == 2 && kv[0] == "sslmode" {
				cfg.SSLMode = kv[1]
			}
		}
	}

	return cfg, nil
}

func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
