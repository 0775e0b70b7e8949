package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names probed in the working directory, in order.
//
//nolint:gochecknoglobals // Fixed discovery order
var discoveryNames = []string{".imghex.yaml", ".imghex.yml", "imghex.yaml"}

// FromYAML parses a configuration from YAML bytes, applied over defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from explicitPath when given, otherwise
// discovers a config file in workingDir. A missing discovered file is not
// an error — defaults are returned; a missing explicit file is.
func Load(workingDir, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = discover(workingDir)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicitPath == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// discover returns the first config file present in dir, or "".
func discover(dir string) string {
	for _, name := range discoveryNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
