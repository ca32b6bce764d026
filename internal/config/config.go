package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Channel is one channel the bot should join, with an optional key.
type Channel struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// UnmarshalYAML accepts either a plain channel name or a {name, key}
// mapping, so simple configs stay a flat list of strings.
func (c *Channel) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&c.Name)
	case yaml.MappingNode:
		type plain Channel
		return value.Decode((*plain)(c))
	default:
		return fmt.Errorf("channel entry must be a name or a name/key mapping (line %d)", value.Line)
	}
}

// Config holds all bot configuration.
type Config struct {
	Server       string    `yaml:"server" env:"IRCBOT_SERVER"`
	Port         int       `yaml:"port" env:"IRCBOT_PORT"`
	ServerPass   string    `yaml:"server_pass" env:"IRCBOT_SERVER_PASS"`
	UseTLS       bool      `yaml:"use_tls" env:"IRCBOT_USE_TLS"`
	Nick         string    `yaml:"nick" env:"IRCBOT_NICK"`
	Username     string    `yaml:"username" env:"IRCBOT_USERNAME"`
	RealName     string    `yaml:"realname" env:"IRCBOT_REALNAME"`
	Channels     []Channel `yaml:"channels"`
	NickRetryMax int       `yaml:"nick_retry_max" env:"IRCBOT_NICK_RETRY_MAX"`
	DataDir      string    `yaml:"data_dir" env:"IRCBOT_DATA_DIR"`
	MonitorAddr  string    `yaml:"monitor_addr" env:"IRCBOT_MONITOR_ADDR"`
	LogLevel     string    `yaml:"log_level" env:"IRCBOT_LOG_LEVEL"`
	LogFile      string    `yaml:"log_file" env:"IRCBOT_LOG_FILE"`
}

// Load reads a YAML configuration file, applies IRCBOT_* environment
// overrides on top, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 6667
	}
	if c.Username == "" {
		c.Username = c.Nick
	}
	if c.RealName == "" {
		c.RealName = c.Nick
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
}

// Validate checks that the configuration is complete enough to connect.
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("server must be set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Nick == "" {
		return fmt.Errorf("nick must be set")
	}
	if c.NickRetryMax < 0 {
		return fmt.Errorf("nick_retry_max must not be negative")
	}

	seen := make(map[string]bool, len(c.Channels))
	for _, ch := range c.Channels {
		if ch.Name == "" {
			return fmt.Errorf("channel entries must have a name")
		}
		if seen[ch.Name] {
			return fmt.Errorf("channel %s listed twice", ch.Name)
		}
		seen[ch.Name] = true
	}

	return nil
}

// Addr returns the server address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}
