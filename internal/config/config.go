// Package config loads constructplan settings from TOML.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

const (
	// EnvPath names the env var consulted when no --config flag is given.
	EnvPath = "CONSTRUCTPLAN_CONFIG"
	// EnvOTLPEndpoint overrides trace.endpoint.
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// LocalFile is used when present in the working directory.
	LocalFile = "constructplan.toml"
)

// Config is the application configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	UI      UIConfig      `toml:"ui"`
	Timings TimingsConfig `toml:"timings"`
	Trace   TraceConfig   `toml:"trace"`
	Log     LogConfig     `toml:"log"`
	Data    DataConfig    `toml:"data"`
}

// UserConfig is shown in the header and detail welcome line.
type UserConfig struct {
	Name     string `toml:"name"`
	Initials string `toml:"initials"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MarkdownStyle    string `toml:"markdown_style"`
	SidebarCollapsed bool   `toml:"sidebar_collapsed"`
}

// TimingsConfig paces the scripted animations. Values are milliseconds
// except ExtractStep, the percentage added per extraction tick.
type TimingsConfig struct {
	ExtractTickMS  int `toml:"extract_tick_ms"`
	ExtractStep    int `toml:"extract_step"`
	RevealMS       int `toml:"reveal_ms"`
	ResetMS        int `toml:"reset_ms"`
	CreationStepMS int `toml:"creation_step_ms"`
	GenerateMS     int `toml:"generate_ms"`
	ConfettiMS     int `toml:"confetti_ms"`
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func (t TimingsConfig) ExtractTick() time.Duration  { return ms(t.ExtractTickMS) }
func (t TimingsConfig) Reveal() time.Duration       { return ms(t.RevealMS) }
func (t TimingsConfig) Reset() time.Duration        { return ms(t.ResetMS) }
func (t TimingsConfig) CreationStep() time.Duration { return ms(t.CreationStepMS) }
func (t TimingsConfig) Generate() time.Duration     { return ms(t.GenerateMS) }
func (t TimingsConfig) Confetti() time.Duration     { return ms(t.ConfettiMS) }

// TraceConfig configures OpenTelemetry export.
type TraceConfig struct {
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
	Insecure    bool   `toml:"insecure"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// DataConfig points at optional fixture overrides.
type DataConfig struct {
	Fixtures string `toml:"fixtures"`
}

// DefaultConfig returns the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// LoadConfig reads path over the defaults, so keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// CreateConfigFile writes the example config to path. It fails if path exists.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ResolvePath picks the config file: the flag value, then $CONSTRUCTPLAN_CONFIG,
// then ./constructplan.toml if it exists. "" means use defaults.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}
	return ""
}

// Resolve loads the config selected by ResolvePath and applies environment
// overrides.
func Resolve(flag string) (*Config, error) {
	config := DefaultConfig()
	if path := ResolvePath(flag); path != "" {
		c, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = c
	}
	if ep := os.Getenv(EnvOTLPEndpoint); ep != "" {
		config.Trace.Endpoint = ep
	}
	return config, nil
}

// Encode renders config as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
