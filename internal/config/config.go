package config

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey overrides exchange.api_key when set.
	EnvAPIKey = "INDODAX_API_KEY"
	// EnvSecretKey overrides exchange.secret_key when set.
	EnvSecretKey = "INDODAX_SECRET_KEY"

	defaultEndpoint = "https://indodax.com/tapi"
)

type Config struct {
	InstanceID string         `yaml:"instance_id"`
	Exchange   ExchangeConfig `yaml:"exchange"`
	Trade      TradeConfig    `yaml:"trade"`
	Telegram   TelegramConfig `yaml:"telegram"`
}

type ExchangeConfig struct {
	APIKey         string  `yaml:"api_key"`
	SecretKey      string  `yaml:"secret_key"`
	Endpoint       string  `yaml:"endpoint"`
	RecvWindowMs   int64   `yaml:"recv_window_ms"`
	HTTPTimeoutSec int64   `yaml:"http_timeout_sec"`
	RequestsPerSec float64 `yaml:"requests_per_sec"`
	RequestBurst   int     `yaml:"request_burst"`
}

type TradeConfig struct {
	// MinIDR is the client-side floor for rupiah-denominated order amounts;
	// the exchange rejects orders below Rp10.000 anyway, this fails earlier.
	MinIDR Decimal `yaml:"min_idr"`
}

type TelegramConfig struct {
	Enabled    bool   `yaml:"enabled"`
	BotToken   string `yaml:"bot_token"`
	ChatID     string `yaml:"chat_id"`
	APIBaseURL string `yaml:"api_base_url"`
	TimeoutSec int64  `yaml:"timeout_sec"`
}

// Decimal is a yaml scalar parsed with decimal.NewFromString, so amounts
// like min_idr never round-trip through float64.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("decimal must be a scalar")
	}
	if value.Value == "" {
		d.Decimal = decimal.Zero
		return nil
	}
	dec, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", value.Value, err)
	}
	d.Decimal = dec
	return nil
}

func (d Decimal) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Load reads a yaml config file and returns a normalized, validated Config.
// A missing file is not an error: all settings then come from defaults and
// the INDODAX_* environment variables.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	if err == nil {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return Config{}, fmt.Errorf("config must contain a single YAML document")
			}
			return Config{}, err
		}
	}
	cfg.normalize()
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.InstanceID = strings.ToLower(strings.TrimSpace(c.InstanceID))
	c.Exchange.APIKey = strings.TrimSpace(c.Exchange.APIKey)
	c.Exchange.SecretKey = strings.TrimSpace(c.Exchange.SecretKey)
	c.Exchange.Endpoint = strings.TrimSpace(c.Exchange.Endpoint)
	c.Telegram.BotToken = strings.TrimSpace(c.Telegram.BotToken)
	c.Telegram.ChatID = strings.TrimSpace(c.Telegram.ChatID)
	c.Telegram.APIBaseURL = strings.TrimSpace(c.Telegram.APIBaseURL)
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.Exchange.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSecretKey)); v != "" {
		c.Exchange.SecretKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.InstanceID == "" {
		c.InstanceID = "indodax"
	}
	if c.Exchange.Endpoint == "" {
		c.Exchange.Endpoint = defaultEndpoint
	}
	if c.Exchange.RecvWindowMs == 0 {
		c.Exchange.RecvWindowMs = 5000
	}
	if c.Exchange.HTTPTimeoutSec == 0 {
		c.Exchange.HTTPTimeoutSec = 15
	}
	// The exchange allows 180 private requests per minute per key.
	if c.Exchange.RequestsPerSec == 0 {
		c.Exchange.RequestsPerSec = 3
	}
	if c.Exchange.RequestBurst == 0 {
		c.Exchange.RequestBurst = 3
	}
	if c.Trade.MinIDR.Cmp(decimal.Zero) == 0 {
		c.Trade.MinIDR = Decimal{decimal.NewFromInt(10000)}
	}
	if c.Telegram.APIBaseURL == "" {
		c.Telegram.APIBaseURL = "https://api.telegram.org"
	}
	if c.Telegram.TimeoutSec == 0 {
		c.Telegram.TimeoutSec = 10
	}
}

func (c Config) Validate() error {
	if !isValidInstanceID(c.InstanceID) {
		return fmt.Errorf("instance_id must match [a-z0-9_-], length 1..24")
	}
	if c.Exchange.APIKey == "" || c.Exchange.SecretKey == "" {
		return fmt.Errorf("exchange api_key/secret_key are required (config or %s/%s)", EnvAPIKey, EnvSecretKey)
	}
	if err := validateURL(c.Exchange.Endpoint, "http", "https"); err != nil {
		return fmt.Errorf("exchange endpoint %v", err)
	}
	if c.Exchange.RecvWindowMs < 1 || c.Exchange.RecvWindowMs > 60000 {
		return fmt.Errorf("exchange recv_window_ms must be between 1 and 60000")
	}
	if c.Exchange.HTTPTimeoutSec < 1 || c.Exchange.HTTPTimeoutSec > 120 {
		return fmt.Errorf("exchange http_timeout_sec must be between 1 and 120")
	}
	if c.Exchange.RequestsPerSec < 0 {
		return fmt.Errorf("exchange requests_per_sec must be >= 0")
	}
	if c.Exchange.RequestBurst < 1 {
		return fmt.Errorf("exchange request_burst must be >= 1")
	}
	if c.Trade.MinIDR.Cmp(decimal.Zero) < 0 {
		return fmt.Errorf("trade min_idr must be >= 0")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram enabled")
		}
		if c.Telegram.TimeoutSec < 1 || c.Telegram.TimeoutSec > 120 {
			return fmt.Errorf("telegram.timeout_sec must be between 1 and 120")
		}
		if err := validateURL(c.Telegram.APIBaseURL, "http", "https"); err != nil {
			return fmt.Errorf("telegram.api_base_url %v", err)
		}
	}
	return nil
}

func isValidInstanceID(v string) bool {
	if len(v) < 1 || len(v) > 24 {
		return false
	}
	for _, r := range v {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			continue
		}
		return false
	}
	return true
}

func validateURL(raw string, schemes ...string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("must be a valid URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("must include scheme and host")
	}
	for _, s := range schemes {
		if parsed.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("scheme must be %s", strings.Join(schemes, " or "))
}
