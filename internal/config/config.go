package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/toolconfig/internal/toolconfig"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = FormatText
)

// Output formats accepted by the show command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config aggregates runtime settings resolved from multiple sources.
// Precedence: CLI flags > YAML settings > Environment variables > Defaults
type Config struct {
	// Root is the project root holding the tool configuration file. Empty
	// means it is derived from the executable location.
	Root     string
	FileName string
	LogLevel string
	Format   string
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	Root     string `yaml:"root"`
	FileName string `yaml:"file"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	SettingsFile string
	Root         *string
	FileName     *string
	LogLevel     *string
	Format       *string
}

// Load extracts settings from multiple sources with precedence:
// CLI flags > YAML settings > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Environment first so the YAML file can override it
	applyEnvConfig(&cfg)

	if overrides != nil && overrides.SettingsFile != "" {
		yamlCfg, err := loadFromFile(overrides.SettingsFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML settings: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		FileName: toolconfig.DefaultFileName,
		LogLevel: defaultLogLevel,
		Format:   defaultFormat,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML settings to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Root != "" {
		cfg.Root = yamlCfg.Root
	}
	if yamlCfg.FileName != "" {
		cfg.FileName = yamlCfg.FileName
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = normalize(yamlCfg.LogLevel)
	}
	if yamlCfg.Format != "" {
		cfg.Format = normalize(yamlCfg.Format)
	}
}

// applyEnvConfig applies environment variable settings.
func applyEnvConfig(cfg *Config) {
	if root := strings.TrimSpace(os.Getenv("TOOLCONFIG_ROOT")); root != "" {
		cfg.Root = root
	}
	if file := strings.TrimSpace(os.Getenv("TOOLCONFIG_FILE")); file != "" {
		cfg.FileName = file
	}
	if level := strings.TrimSpace(os.Getenv("TOOLCONFIG_LOG_LEVEL")); level != "" {
		cfg.LogLevel = normalize(level)
	}
	if format := strings.TrimSpace(os.Getenv("TOOLCONFIG_FORMAT")); format != "" {
		cfg.Format = normalize(format)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Root != nil && *overrides.Root != "" {
		cfg.Root = *overrides.Root
	}
	if overrides.FileName != nil && *overrides.FileName != "" {
		cfg.FileName = *overrides.FileName
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = normalize(*overrides.LogLevel)
	}
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = normalize(*overrides.Format)
	}
}

// validateConfig validates the final settings.
func validateConfig(cfg Config) error {
	if _, ok := validLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	if strings.TrimSpace(cfg.FileName) == "" {
		return fmt.Errorf("configuration file name cannot be empty")
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// LoaderOptions translates the settings into toolconfig construction options.
func (c Config) LoaderOptions() []toolconfig.Option {
	opts := []toolconfig.Option{toolconfig.WithFileName(c.FileName)}
	if c.Root != "" {
		opts = append(opts, toolconfig.WithRoot(c.Root))
	}
	return opts
}
