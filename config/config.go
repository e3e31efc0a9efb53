// Package config loads goal-quantifier settings from an optional YAML file
// and GOALQ_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// ValidStores lists the supported document stores.
var ValidStores = []string{StoreMemory, StoreRedis}

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Quantification QuantificationConfig `yaml:"quantification"`
	Store          StoreConfig          `yaml:"store"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
	Agent          AgentConfig          `yaml:"agent"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type QuantificationConfig struct {
	InflationRate float64 `yaml:"inflation_rate"`
	// CEL expression over goal and category; true skips inflation growth.
	ExemptionRule string `yaml:"exemption_rule"`
}

type StoreConfig struct {
	Kind      string `yaml:"kind"`
	RedisAddr string `yaml:"redis_addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
	TTL       string `yaml:"ttl"` // "" o "0" = sin expiración
}

type RateLimitConfig struct {
	Capacity int    `yaml:"capacity"`
	Refill   string `yaml:"refill"`
}

// AgentConfig is registration data for the orchestrator. None of it
// changes how the future value is computed.
type AgentConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Model       string `yaml:"model"`
	OutputKey   string `yaml:"output_key"`
	Instruction string `yaml:"instruction"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
		},
		Quantification: QuantificationConfig{
			InflationRate: 0.06,
			ExemptionRule: `category == "debt_reduction"`,
		},
		Store: StoreConfig{
			Kind:      StoreMemory,
			RedisAddr: "localhost:6379",
			KeyPrefix: "fso:",
		},
		RateLimit: RateLimitConfig{
			Capacity: 60,
			Refill:   "1m",
		},
		Agent: AgentConfig{
			Name:        "goal_quantification_agent",
			Description: "Reads SMART goal data from the FSO, calls a deterministic tool to compute the inflation-adjusted future value, and writes the result back into the FSO under 'quantification_data'.",
			Model:       "gemini-2.5-flash",
			OutputKey:   "financial_state_object",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GOALQ_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GOALQ_INFLATION_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid GOALQ_INFLATION_RATE %q: %w", v, err)
		}
		c.Quantification.InflationRate = rate
	}
	if v := os.Getenv("GOALQ_DEBT_RULE"); v != "" {
		c.Quantification.ExemptionRule = v
	}
	if v := os.Getenv("GOALQ_STORE"); v != "" {
		c.Store.Kind = v
	}
	if v := os.Getenv("GOALQ_REDIS_ADDR"); v != "" {
		c.Store.RedisAddr = v
	}
	if v := os.Getenv("GOALQ_REDIS_PASSWORD"); v != "" {
		c.Store.Password = v
	}
	if v := os.Getenv("GOALQ_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GOALQ_REDIS_DB %q: %w", v, err)
		}
		c.Store.DB = db
	}
	if v := os.Getenv("GOALQ_RATE_LIMIT"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GOALQ_RATE_LIMIT %q: %w", v, err)
		}
		c.RateLimit.Capacity = capacity
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Quantification.InflationRate <= -1 {
		return fmt.Errorf("inflation rate must be greater than -1, got %v", c.Quantification.InflationRate)
	}

	validStore := false
	for _, s := range ValidStores {
		if c.Store.Kind == s {
			validStore = true
			break
		}
	}
	if !validStore {
		return fmt.Errorf("invalid store: %s (valid: %v)", c.Store.Kind, ValidStores)
	}
	if c.Store.Kind == StoreRedis && c.Store.RedisAddr == "" {
		return fmt.Errorf("redis store requires redis_addr")
	}

	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate limit capacity must be positive, got %d", c.RateLimit.Capacity)
	}

	for name, raw := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"rate_limit.refill":       c.RateLimit.Refill,
		"store.ttl":               c.Store.TTL,
	} {
		if raw == "" {
			continue
		}
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
	}

	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (s ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(s.ReadTimeout, 15*time.Second)
}

func (s ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(s.WriteTimeout, 15*time.Second)
}

func (s ServerConfig) GetIdleTimeout() time.Duration {
	return parseDuration(s.IdleTimeout, 60*time.Second)
}

func (s ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(s.ShutdownTimeout, 10*time.Second)
}

func (r RateLimitConfig) GetRefill() time.Duration {
	return parseDuration(r.Refill, time.Minute)
}

func (s StoreConfig) GetTTL() time.Duration {
	return parseDuration(s.TTL, 0)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
