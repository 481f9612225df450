// Package config loads CLI settings from a YAML file, a .env file and the
// SCREENGEN_* environment, then validates the merged result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SCREENGEN_"

// Config holds the settings shared by the CLI commands.
type Config struct {
	Renderer  string    `yaml:"renderer" validate:"required,oneof=flutter preview"`
	DarkMode  bool      `yaml:"darkMode"`
	Device    string    `yaml:"device" validate:"omitempty,device"`
	Theme     string    `yaml:"theme"`
	ThemeFile string    `yaml:"themeFile"`
	Screens   []string  `yaml:"screens" validate:"dive,required"`
	Output    string    `yaml:"output"`
	Preset    string    `yaml:"preset"`
	Locale    string    `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `yaml:"human"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Renderer: "flutter",
		Device:   "iphone13",
		Log:      LogConfig{Level: "warn"},
	}
}

// Source describes where settings come from. Later sources win: file, then
// .env files, then the process environment.
type Source struct {
	// File is an optional YAML config path.
	File string
	// EnvFiles are optional dotenv files; missing files are skipped.
	EnvFiles []string
	// LookupEnv reads the process environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load merges every source over Default and validates the result.
func Load(src Source) (Config, error) {
	cfg := Default()

	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", src.File, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", src.File, err)
		}
	}

	dotenv := map[string]string{}
	for _, path := range src.EnvFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read env file %s: %w", path, err)
		}
		for k, v := range values {
			dotenv[k] = v
		}
	}

	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}

	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	setString := func(key string, dst *string) {
		if v, ok := env(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	setBool := func(key string, dst *bool) error {
		v, ok := env(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return NewValidationError(strings.ToLower(key), fmt.Sprintf("%s%s must be a boolean", EnvPrefix, key), err)
		}
		*dst = parsed
		return nil
	}

	setString("RENDERER", &cfg.Renderer)
	setString("DEVICE", &cfg.Device)
	setString("THEME", &cfg.Theme)
	setString("THEME_FILE", &cfg.ThemeFile)
	setString("OUTPUT", &cfg.Output)
	setString("PRESET", &cfg.Preset)
	setString("LOCALE", &cfg.Locale)
	setString("LOG_LEVEL", &cfg.Log.Level)
	if v, ok := env("SCREENS"); ok {
		cfg.Screens = splitList(v)
	}
	if err := setBool("DARK_MODE", &cfg.DarkMode); err != nil {
		return err
	}
	return setBool("LOG_HUMAN", &cfg.Log.Human)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
