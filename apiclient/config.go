package apiclient

import (
	"time"

	"github.com/restfold/apikit/validation"
)

const defaultTimeout = 30 * time.Second

// Config configures an API client. It is fixed at construction and never
// mutated afterwards; switching credentials requires a new client.
type Config struct {
	// BaseURL is the base URL prepended to all request endpoints.
	// It must be an absolute http(s) URL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"required,http_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" json:"timeout"`

	// Auth configures authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-" json:"-"`

	// ContentType, when set, overrides the per-request content type in the
	// final header set (client-level negotiation defaults win).
	ContentType string `yaml:"content_type" mapstructure:"content_type" json:"content_type"`

	// Accept, when set, overrides the per-request accept value in the
	// final header set.
	Accept string `yaml:"accept" mapstructure:"accept" json:"accept"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" json:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}
