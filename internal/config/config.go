// Package config holds run-wide settings decoded from Viper. Values come from
// command-line flags, SEQEDIT_* environment variables, an optional config file
// and the defaults below, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SEQEDIT_LINE_WIDTH.
const EnvPrefix = "SEQEDIT"

// Setting keys. Flag names match keys one to one.
const (
	KeyLineWidth = "line-width"
	KeyFormat    = "format"
	KeyOutput    = "output"
	KeyThreads   = "threads"
	KeyQuiet     = "quiet"
	KeyVerbose   = "verbose"
)

// Config is the root-level settings struct.
type Config struct {
	// sequence bases per FASTA line; 0 writes the sequence on one line
	LineWidth int `mapstructure:"line-width"`

	// output format name, resolved by the writers registry
	Format string `mapstructure:"format"`

	// output path; empty or "-" means stdout
	Output string `mapstructure:"output"`

	// batch worker count; 0 means all CPUs
	Threads int `mapstructure:"threads"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// Defaults used when nothing else sets a key.
var Defaults = map[string]any{
	KeyLineWidth: 70,
	KeyFormat:    "fasta",
	KeyOutput:    "",
	KeyThreads:   0,
	KeyQuiet:     false,
	KeyVerbose:   false,
}

// NewViper returns an isolated Viper instance with defaults and env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known key to the flag of the same name in fs, if present.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for k := range Defaults {
		f := fs.Lookup(k)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(k, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", k, err)
		}
	}
	return nil
}

// Load reads the optional config file and decodes v into a validated Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	return c, c.Validate()
}

// Validate applies the invariants shared by every command.
func (c Config) Validate() error {
	if c.LineWidth < 0 {
		return errors.New("--line-width must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Format == "" {
		return errors.New("--format must not be empty")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Stdout reports whether output goes to the standard output stream.
func (c Config) Stdout() bool { return c.Output == "" || c.Output == "-" }
