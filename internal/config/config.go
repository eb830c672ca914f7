// Package config resolves server settings from defaults, an optional
// isoserve.yaml, the PORT environment variable, and command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = 8080
	DefaultConfigFile = "isoserve.yaml"
	DefaultDebounceMS = 300
)

type Config struct {
	Host       string            `yaml:"host"`
	Port       int               `yaml:"port"`
	Root       string            `yaml:"root"`
	LiveReload bool              `yaml:"live_reload"`
	DebounceMS int               `yaml:"debounce_ms"`
	MIMETypes  map[string]string `yaml:"mime_types"`
}

// Default returns the zero-argument configuration: all interfaces, port
// 8080, auto-detected root, live reload on.
func Default() *Config {
	return &Config{
		Host:       "",
		Port:       DefaultPort,
		Root:       "",
		LiveReload: true,
		DebounceMS: DefaultDebounceMS,
		MIMETypes:  map[string]string{},
	}
}

// Load builds the configuration for the serve command. Precedence, lowest
// first: defaults, config file, PORT environment variable, flags.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	host := fs.String("host", "", "The host/IP to bind to (default: all interfaces)")
	port := fs.Int("port", DefaultPort, "The port to listen on")
	root := fs.String("root", "", "Directory to serve (default: dist if present, else .)")
	configPath := fs.String("config", DefaultConfigFile, "Path to the config file")
	noReload := fs.Bool("no-reload", false, "Disable live reload")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	if err := cfg.loadFile(*configPath, *configPath != DefaultConfigFile); err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	// Flags win over the file and the environment, but only when the user
	// actually passed them.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "root":
			cfg.Root = *root
		case "no-reload":
			cfg.LiveReload = !*noReload
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges the YAML file at path into c. A missing default file is
// not an error; a missing explicitly requested file is.
func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.DebounceMS < 1 {
		return fmt.Errorf("invalid debounce interval: %dms", c.DebounceMS)
	}
	return nil
}

// ServerAddress returns the host:port string to listen on. An empty host
// means all interfaces.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Debounce returns the watcher debounce interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
