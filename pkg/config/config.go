package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/catalog"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HWBENCH_LOGGING_LEVEL.
const EnvPrefix = "HWBENCH"

// Config represents the application configuration.
type Config struct {
	CatalogLocation string        `json:"catalog_location,omitempty" mapstructure:"catalog_location"`
	Defaults        DefaultConfig `json:"defaults" mapstructure:"defaults"`
	Logging         LoggingConfig `json:"logging" mapstructure:"logging"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	Resolution     string `json:"resolution" mapstructure:"resolution"`
	Output         string `json:"output" mapstructure:"output"`
	OutputDir      string `json:"output_dir" mapstructure:"output_dir"`
	PandocTemplate string `json:"pandoc_template,omitempty" mapstructure:"pandoc_template"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

//nolint:gochecknoglobals // Accepted values for enum-like settings
var (
	outputFormats = []string{"table", "json", "markdown", "pdf"}
	logFormats    = []string{"console", "json"}
)

// Defaults returns the built-in configuration.
func Defaults() (cfg Config) {
	cfg = Config{
		Defaults: DefaultConfig{
			Resolution: string(hardware.DefaultResolution),
			Output:     "table",
			OutputDir:  "./reports",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
	return cfg
}

// DefaultPath is ~/.hwbench/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".hwbench", "config.json")
	return path, err
}

func newViper() (v *viper.Viper) {
	v = viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("catalog_location", d.CatalogLocation)
	v.SetDefault("defaults.resolution", d.Defaults.Resolution)
	v.SetDefault("defaults.output", d.Defaults.Output)
	v.SetDefault("defaults.output_dir", d.Defaults.OutputDir)
	v.SetDefault("defaults.pandoc_template", d.Defaults.PandocTemplate)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	return v
}

// Load reads configuration from file with HWBENCH_* environment overrides.
// An empty configPath uses DefaultPath, which may be absent; an explicit path must exist.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	v := newViper()

	_, err = os.Stat(path)
	switch {
	case err == nil:
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'hwbench init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode config: %s", path)
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate checks enum-like settings and that a local catalog override exists when set.
func (c *Config) Validate() (err error) {
	if c.Defaults.Resolution != "" {
		_, err = hardware.ParseResolution(c.Defaults.Resolution)
		if err != nil {
			err = errors.Wrap(err, "defaults.resolution")
			return err
		}
	}

	if c.Defaults.Output != "" && !oneOf(c.Defaults.Output, outputFormats) {
		err = errors.Errorf("defaults.output must be one of %s, got %q", strings.Join(outputFormats, ", "), c.Defaults.Output)
		return err
	}

	if c.Logging.Level != "" {
		_, err = zerolog.ParseLevel(c.Logging.Level)
		if err != nil {
			err = errors.Wrapf(err, "invalid logging.level %q", c.Logging.Level)
			return err
		}
	}

	if c.Logging.Format != "" && !oneOf(c.Logging.Format, logFormats) {
		err = errors.Errorf("logging.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Logging.Format)
		return err
	}

	if c.CatalogLocation != "" && !catalog.IsRemote(c.CatalogLocation) {
		_, err = os.Stat(c.CatalogLocation)
		if os.IsNotExist(err) {
			err = errors.Errorf("catalog file not found: %s", c.CatalogLocation)
			return err
		}
		err = nil
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = Defaults().Defaults.OutputDir
	}

	return err
}

// InitConfig creates a default configuration file and refuses to overwrite one.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Defaults()

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
