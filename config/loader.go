// Package config loads caller configuration from YAML files, .env files
// and environment variables, in that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config file path.
	ConfigFile string
	// EnvFile is an explicit .env file path.
	EnvFile string
}

// Option is a functional option for Load.
type Option func(*LoaderConfig)

// WithConfigFile sets an explicit config file path. Loading fails if the
// file cannot be read.
func WithConfigFile(path string) Option {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates cfg for the named service. Sources, lowest precedence
// first: a YAML config file (explicit, or ./config.yml if present), a
// .env file (explicit, or ./.env if present), then process environment
// variables prefixed with the upper-cased service name
// (e.g. APICALL_BASE_URL for service "apicall" and key "base_url").
func Load(serviceName string, cfg any, opts ...Option) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	} else if exists("config.yml") {
		v.SetConfigFile("config.yml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read config.yml: %w", err)
		}
	}

	envFile := lc.EnvFile
	if envFile == "" && exists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	bindEnv(v, serviceName)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}
	return nil
}

// bindEnv copies prefixed environment variables into viper. Viper's
// AutomaticEnv does not surface env-only keys through Unmarshal, so each
// variable is set explicitly under both its flat and dotted key forms
// (APICALL_AUTH_TOKEN -> auth_token and auth.token).
func bindEnv(v *viper.Viper, serviceName string) {
	prefix := strings.ToUpper(serviceName) + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		v.Set(key, pair[1])
		if dotted := strings.ReplaceAll(key, "_", "."); dotted != key {
			v.Set(dotted, pair[1])
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
