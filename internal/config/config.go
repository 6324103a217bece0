// Package config loads homekeeper settings from defaults, an optional YAML or
// TOML file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/homekeeper/internal/models"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Member is a configured family member.
type Member struct {
	Name   string `yaml:"name" toml:"name"`
	Points int    `yaml:"points" toml:"points"`
}

// Keymap binds terminal UI actions to keys.
type Keymap struct {
	Quit      string `yaml:"quit" toml:"quit"`
	Up        string `yaml:"up" toml:"up"`
	Down      string `yaml:"down" toml:"down"`
	Open      string `yaml:"open" toml:"open"`
	Back      string `yaml:"back" toml:"back"`
	NextTab   string `yaml:"next_tab" toml:"next_tab"`
	Toggle    string `yaml:"toggle" toml:"toggle"`
	Attention string `yaml:"attention" toml:"attention"`
	Add       string `yaml:"add" toml:"add"`
	Edit      string `yaml:"edit" toml:"edit"`
	Delete    string `yaml:"delete" toml:"delete"`
	Assign    string `yaml:"assign" toml:"assign"`
	Select    string `yaml:"select" toml:"select"`
	MarkAll   string `yaml:"mark_all" toml:"mark_all"`
	Clear     string `yaml:"clear" toml:"clear"`
	Groceries string `yaml:"groceries" toml:"groceries"`
	Cars      string `yaml:"cars" toml:"cars"`
}

type Config struct {
	// Addr is the listen address of the Connect server.
	Addr string `yaml:"addr" toml:"addr"`
	// Store selects the session store backing: "memory" or "sqlite".
	Store    string `yaml:"store" toml:"store"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Seed loads the demo household on startup.
	Seed           bool     `yaml:"seed" toml:"seed"`
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`
	Family         []Member `yaml:"family" toml:"family"`
	Keys           Keymap   `yaml:"keys" toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:           ":8080",
		Store:          StoreMemory,
		LogLevel:       "info",
		Seed:           true,
		AllowedOrigins: []string{"*"},
		Family: []Member{
			{Name: "Dad", Points: 95},
			{Name: "Mum", Points: 88},
			{Name: "Filipa", Points: 72},
			{Name: "Ines", Points: 68},
			{Name: "Marta", Points: 63},
			{Name: "Tomas", Points: 45},
		},
		Keys: Keymap{
			Quit:      "q",
			Up:        "k",
			Down:      "j",
			Open:      "enter",
			Back:      "esc",
			NextTab:   "tab",
			Toggle:    " ",
			Attention: "!",
			Add:       "a",
			Edit:      "e",
			Delete:    "d",
			Assign:    "r",
			Select:    "s",
			MarkAll:   "m",
			Clear:     "c",
			Groceries: "g",
			Cars:      "v",
		},
	}
}

// Load builds the configuration. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// Lists in the file replace the defaults instead of extending them.
	family, origins := c.Family, c.AllowedOrigins
	c.Family, c.AllowedOrigins = nil, nil
	defer func() {
		if c.Family == nil {
			c.Family = family
		}
		if c.AllowedOrigins == nil {
			c.AllowedOrigins = origins
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Addr = getEnv("HOMEKEEPER_ADDR", c.Addr)
	c.Store = getEnv("HOMEKEEPER_STORE", c.Store)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	if v, err := strconv.ParseBool(os.Getenv("HOMEKEEPER_SEED")); err == nil {
		c.Seed = v
	}
}

// Validate checks values that have no sensible fallback.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q: expected %s or %s", c.Store, StoreMemory, StoreSQLite)
	}

	seen := make(map[string]bool, len(c.Family))
	for _, m := range c.Family {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return errors.New("family member without a name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate family member %q", name)
		}
		seen[name] = true
	}
	return nil
}

// Members converts the configured family into model values.
func (c Config) Members() []models.FamilyMember {
	members := make([]models.FamilyMember, 0, len(c.Family))
	for _, m := range c.Family {
		members = append(members, models.NewFamilyMember(strings.TrimSpace(m.Name), m.Points))
	}
	return members
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
