package config

import (
	"github.com/nspcc-dev/pngme/cmd/internal/configvalidator"
)

// schema describes all supported configuration values.
type schema struct {
	Logger struct {
		Level    string `mapstructure:"level"`
		Encoding string `mapstructure:"encoding"`
	} `mapstructure:"logger"`

	Print struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"print"`

	Verbose bool `mapstructure:"verbose"`
}

// Validate checks that c contains supported configuration values only.
// Returns error wrapping configvalidator.ErrUnknownField otherwise.
func Validate(c *Config) error {
	return configvalidator.CheckForUnknownFields(c.v.AllSettings(), schema{})
}
