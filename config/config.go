package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kbukum/tradekit/logger"
	"github.com/kbukum/tradekit/security"
	"github.com/kbukum/tradekit/validation"
	"github.com/kbukum/tradekit/version"
)

// Auth placement values for AuthIn.
const (
	AuthInHeader = "header"
	AuthInQuery  = "query"
)

// Config contains everything a client needs to reach and authenticate
// against the exchange. The zero value is not usable; start from New or
// Load, or call ApplyDefaults on a hand-built value.
type Config struct {
	// Scheme is the URL scheme, http or https.
	Scheme string `yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`

	// Host is the exchange host, optionally with a port.
	Host string `yaml:"host" mapstructure:"host" validate:"required"`

	// BasePath is prefixed to every endpoint path, e.g. "/api/v1".
	BasePath string `yaml:"base_path" mapstructure:"base_path"`

	// APIKey identifies the key pair used for request signing.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// APISecret is the HMAC secret paired with APIKey.
	// In debug mode it is written to the log in cleartext.
	APISecret string `yaml:"api_secret" mapstructure:"api_secret"`

	// AccessToken, when set, is sent as a bearer token and the key pair
	// is ignored for that request.
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`

	// AuthIn selects where signing material is placed: "header" or "query".
	AuthIn string `yaml:"auth_in" mapstructure:"auth_in" validate:"omitempty,oneof=header query"`

	// Timeout bounds each HTTP request, including body read. Zero means
	// no client-side timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// Debug enables request/response tracing in the log. This includes
	// signing material: nonce and secret appear in cleartext.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// TempDir is where downloaded files are written. Each download gets
	// its own directory beneath it. Defaults to os.TempDir().
	TempDir string `yaml:"temp_dir" mapstructure:"temp_dir"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	TLS     security.TLSConfig `yaml:"tls" mapstructure:"tls"`
	Logging logger.Config      `yaml:"logging" mapstructure:"logging"`
}

// New returns a Config with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Scheme == "" {
		c.Scheme = "https"
	}
	if c.Host == "" {
		c.Host = "www.bitmex.com"
	}
	if c.BasePath == "" {
		c.BasePath = "/api/v1"
	}
	if c.AuthIn == "" {
		c.AuthIn = AuthInHeader
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.APIKey != "" && c.APISecret == "" {
		return fmt.Errorf("config: api_secret is required when api_key is set")
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BaseURL returns scheme://host with no trailing slash.
func (c *Config) BaseURL() string {
	return c.Scheme + "://" + c.Host
}

// HasCredentials reports whether any authentication material is present.
func (c *Config) HasCredentials() bool {
	return c.AccessToken != "" || (c.APIKey != "" && c.APISecret != "")
}

// NewLogger builds the SDK logger described by the Logging section.
func (c *Config) NewLogger() *logger.Logger {
	cfg := c.Logging
	return logger.New(&cfg, "tradekit")
}
