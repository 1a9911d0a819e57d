package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config holds CLI configuration
type Config struct {
	StorePath  string
	Output     string
	Verbose    bool
	ConfigFile string
}

// fileConfig is the optional TOML config file shape
type fileConfig struct {
	StorePath string `toml:"store_path"`
	Output    string `toml:"output"`
	Verbose   bool   `toml:"verbose"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorePath:  getEnvOrDefault("BANK_STORE", "data/bank_system.csv"),
		Output:     getEnvOrDefault("BANK_OUTPUT", "text"),
		Verbose:    false,
		ConfigFile: getEnvOrDefault("BANK_CONFIG", defaultConfigFile()),
	}
}

// ApplyFile overlays values from the TOML config file, if one exists.
// Flags set explicitly on the command line keep precedence.
func (c *Config) ApplyFile(flags *pflag.FlagSet) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(c.ConfigFile, &fc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // no config file is fine
		}
		return err
	}

	if !flags.Changed("store") && fc.StorePath != "" {
		c.StorePath = fc.StorePath
	}
	if !flags.Changed("output") && fc.Output != "" {
		c.Output = fc.Output
	}
	if !flags.Changed("verbose") && fc.Verbose {
		c.Verbose = true
	}
	return nil
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bank/config.toml"
	}
	return filepath.Join(home, ".bank", "config.toml")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
