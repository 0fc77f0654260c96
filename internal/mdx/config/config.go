// Package config loads the optional mdxc project file.
//
// The file is looked up in the working directory as .mdxc.yaml, .mdxc.yml
// or .mdxc.toml, in that order, unless a path is given explicitly:
//
//	skipExport: false
//	preserveNewlines: true
//	maxDepth: 5000
//	logLevel: debug
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Names are the project file names Find looks for, in order.
var Names = []string{".mdxc.yaml", ".mdxc.yml", ".mdxc.toml"}

type Config struct {
	SkipExport       bool   `yaml:"skipExport" toml:"skipExport"`
	PreserveNewlines bool   `yaml:"preserveNewlines" toml:"preserveNewlines"`
	MaxDepth         int    `yaml:"maxDepth" toml:"maxDepth"`
	LogLevel         string `yaml:"logLevel" toml:"logLevel"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{LogLevel: logrus.WarnLevel.String()}
}

// Find returns the first project file present in dir, or "".
func Find(dir string) string {
	for _, name := range Names {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// Load reads path on top of Default. An empty path yields Default.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(b), c); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	default:
		return nil, errors.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	logrus.Debugf("Loaded config from %s", path)
	return c, nil
}

func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
