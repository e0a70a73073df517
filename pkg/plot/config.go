package plot

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scoreplot/pkg/backend"
	"github.com/matzehuels/scoreplot/pkg/errors"
)

const appName = "scoreplot"

// Config is the contents of a scoreplot TOML file.
//
//	[plot]
//	format = "Weighted Scatter"
//	values = ["pitchSpace", "Duration"]
//	colors = ["r", "Steel Blue", [0.5, 0.5, 0.5]]
//
//	[backend]
//	graphviz = false
//	rsvg = "/opt/homebrew/bin/rsvg-convert"
type Config struct {
	Plot    Options       `toml:"plot"`
	Backend BackendConfig `toml:"backend"`
}

// BackendConfig selects which optional plotting components to load.
// Unset switches keep the component enabled.
type BackendConfig struct {
	Graphviz  *bool  `toml:"graphviz"`
	Export    *bool  `toml:"export"`
	Converter string `toml:"rsvg"`
}

// BackendOptions converts the [backend] table into loader options.
func (c *Config) BackendOptions() []backend.Option {
	var opts []backend.Option
	if b := c.Backend.Graphviz; b != nil && !*b {
		opts = append(opts, backend.WithoutGraphviz())
	}
	if b := c.Backend.Export; b != nil && !*b {
		opts = append(opts, backend.WithoutExport())
	}
	if c.Backend.Converter != "" {
		opts = append(opts, backend.WithConverter(c.Backend.Converter))
	}
	return opts
}

// ParseConfig decodes a TOML document. Unknown keys are rejected so that
// misspelled options do not silently fall back to defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// LoadConfig reads and decodes the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// LoadDefaultConfig reads the config file at [DefaultConfigPath].
// A missing file yields an empty config.
func LoadDefaultConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// DefaultConfigPath returns the config file location using the XDG standard
// (~/.config/scoreplot/config.toml).
func DefaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
