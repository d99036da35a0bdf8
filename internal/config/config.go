// Package config loads run defaults from an optional .treeconv.yaml file
// and TREECONV_* environment variables. Precedence is flags > environment >
// file > built-ins; flag handling lives with the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory unless overridden.
const DefaultFile = ".treeconv.yaml"

// Config holds the tunable defaults of a run.
type Config struct {
	OutputDir string `yaml:"output_dir"` // where the root directory is created
	RootName  string `yaml:"root_name"`  // overrides the parsed root when set
	DirPerm   string `yaml:"dir_perm"`   // octal, e.g. "0755"
	FilePerm  string `yaml:"file_perm"`  // octal, e.g. "0644"
	Plain     bool   `yaml:"plain"`      // no icons, no colors
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		OutputDir: ".",
		DirPerm:   "0755",
		FilePerm:  "0644",
	}
}

// Load reads path when it exists and applies environment overrides on top.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fine, run on defaults
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TREECONV_OUT"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("TREECONV_ROOT_NAME"); v != "" {
		c.RootName = v
	}
	if v := os.Getenv("TREECONV_DIR_PERM"); v != "" {
		c.DirPerm = v
	}
	if v := os.Getenv("TREECONV_FILE_PERM"); v != "" {
		c.FilePerm = v
	}
	if v := os.Getenv("TREECONV_PLAIN"); v != "" {
		c.Plain = v == "1" || strings.EqualFold(v, "true")
	}
}

// ParsePerm converts an octal permission string ("0755" or "0o755") into a
// file mode, falling back to def for an empty string.
func ParsePerm(s string, def os.FileMode) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	u, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}
