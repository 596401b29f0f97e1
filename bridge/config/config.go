package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Init.
const (
	DefaultName       = "politician-trading-data-assistant"
	DefaultVersion    = "1.0.0"
	DefaultCommand    = "node"
	DefaultEntryPoint = "node_modules/@anguslin/mcp-capitol-trades/build/src/index.js"
	DefaultListen     = ":5000"
)

// Server describes how the upstream MCP tool server subprocess is launched.
type Server struct {
	Command   string   `yaml:"command,omitempty" json:"command,omitempty"`
	Arguments []string `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	// EntryPoint is appended to Arguments; relative paths are resolved
	// against BaseDir.
	EntryPoint string `yaml:"entryPoint,omitempty" json:"entryPoint,omitempty"`
	// BaseDir defaults to the directory of the running executable.
	BaseDir string `yaml:"baseDir,omitempty" json:"baseDir,omitempty"`
}

// Config holds the bridge settings loaded from YAML.
type Config struct {
	Name    string            `yaml:"name,omitempty" json:"name,omitempty"`
	Version string            `yaml:"version,omitempty" json:"version,omitempty"`
	Server  Server            `yaml:"server,omitempty" json:"server,omitempty"`
	Aliases map[string]string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Debug   bool              `yaml:"debug,omitempty" json:"debug,omitempty"`
	Listen  string            `yaml:"listen,omitempty" json:"listen,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Load reads a YAML configuration from location (path or URL).
func Load(ctx context.Context, location string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", location, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", location, err)
	}
	cfg.Init()
	return cfg, nil
}

// Init applies defaults for unset fields.
func (c *Config) Init() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Server.Command == "" && c.Server.EntryPoint == "" && len(c.Server.Arguments) == 0 {
		c.Server.Command = DefaultCommand
		c.Server.EntryPoint = DefaultEntryPoint
	}
	if c.Server.BaseDir == "" {
		c.Server.BaseDir = executableDir()
	}
}

// Validate reports configuration that cannot launch the tool server.
func (c *Config) Validate() error {
	if c.Server.Command == "" {
		return fmt.Errorf("server.command is required")
	}
	return nil
}

// CommandLine returns the subprocess command and its arguments with the
// entry point resolved.
func (s *Server) CommandLine() (string, []string) {
	args := append([]string{}, s.Arguments...)
	if s.EntryPoint != "" {
		entry := s.EntryPoint
		if !filepath.IsAbs(entry) && s.BaseDir != "" {
			entry = filepath.Join(s.BaseDir, entry)
		}
		args = append(args, entry)
	}
	return s.Command, args
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}
