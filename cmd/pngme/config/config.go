package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nspcc-dev/pngme/cmd/pngme/config/internal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	path []string
}

const separator = "."

// Option allows to set an optional parameter of the Config.
type Option func(*opts)

type opts struct {
	path     string
	optional bool
}

func defaultOpts() *opts {
	return new(opts)
}

// WithConfigFile returns an option to set the system path
// to the configuration file. The file MUST exist.
func WithConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = false
	}
}

// WithOptionalConfigFile is similar to WithConfigFile but missing file
// is not an error: Config falls back to ENV and defaults then.
func WithOptionalConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = true
	}
}

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it.
// Otherwise, Config is a degenerate tree
// filled from ENV variables only (PNGME_ prefix,
// sections separated by "_").
func New(opts ...Option) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(internal.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, internal.EnvSeparator))

	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	if o.path != "" {
		v.SetConfigFile(o.path)

		err := v.ReadInConfig()
		if err != nil && !(o.optional && errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		v: v,
	}, nil
}

// Sub returns subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path[:len(x.path):len(x.path)], name),
	}
}

func (x *Config) key(name string) string {
	return strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator)
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. String).
// Note: casting via Go `.()` operator is not
// recommended.
func (x *Config) Value(name string) any {
	return x.v.Get(x.key(name))
}

// BindFlag makes the flag value to override the named configuration value
// when the flag is explicitly set.
func (x *Config) BindFlag(name string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("missing flag for %q config value", x.key(name))
	}

	return x.v.BindPFlag(x.key(name), f)
}

// Used returns path to the configuration file which has been read. Returns
// empty string if no file has been used.
func (x *Config) Used() string {
	return x.v.ConfigFileUsed()
}
