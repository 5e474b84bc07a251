package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/fast-create/fast-create/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood in config.yaml.
const (
	KeyPackageManager = "package_manager"
	KeyLogLevel       = "log_level"
	KeyHooksMerge     = "hooks.merge"
	KeyVersions       = "versions"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	PackageManager string            `mapstructure:"package_manager"`
	LogLevel       string            `mapstructure:"log_level"`
	Hooks          HookSettings      `mapstructure:"hooks"`
	Versions       map[string]string `mapstructure:"versions"`
}

// HookSettings controls how hook-runner entries from different writers combine.
type HookSettings struct {
	// Merge keeps every hook when two writers register different hooks.
	// When false the last writer replaces the whole hooks section.
	Merge bool `mapstructure:"merge"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		PackageManager: "yarn",
		LogLevel:       "info",
		Hooks:          HookSettings{Merge: true},
		Versions:       map[string]string{},
	}
}

// Dir returns the config directory. FAST_CREATE_HOME overrides ~/.fast-create.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load reads settings from FilePath and the environment.
func Load() (*Settings, error) {
	return LoadFile(FilePath())
}

// LoadFile reads settings from path, overlaid with FAST_CREATE_* environment
// variables. A missing file yields the defaults. A file that fails schema
// validation is an error.
func LoadFile(path string) (*Settings, error) {
	if _, err := os.Stat(path); err == nil {
		result, err := ValidateFile(path)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("invalid config %s: %s", path, result.Summary())
		}
	}

	v := newViper(path)
	d := Defaults()
	v.SetDefault(KeyPackageManager, d.PackageManager)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyHooksMerge, d.Hooks.Merge)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if s.Versions == nil {
		s.Versions = map[string]string{}
	}
	return s, nil
}

// Get returns the value stored under key in the file at path, or nil.
func Get(path, key string) (any, error) {
	v := newViper(path)
	if err := readConfig(v); err != nil {
		return nil, err
	}
	return v.Get(key), nil
}

// Set writes key=value into the file at path. The value "true" or "false" is
// stored as a boolean. The resulting document must pass schema validation,
// otherwise nothing is written.
func Set(path, key, value string) error {
	v := newViper(path)
	if err := readConfig(v); err != nil {
		return err
	}

	v.Set(key, parseValue(value))

	result, err := ValidateValue(v.AllSettings())
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("refusing to save %s=%s: %s", key, value, result.Summary())
	}

	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfig loads the config file, treating a missing file as empty.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

func parseValue(s string) any {
	switch s {
	case "true", "false":
		b, _ := strconv.ParseBool(s)
		return b
	}
	return s
}
