package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
)

// EnvPrefix is prepended to every variable name in the Config env tags.
const EnvPrefix = "ECOSOCIAL_"

// parseEnv overlays values from ECOSOCIAL_* environment variables. Unset
// variables leave the current value untouched.
func parseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return oops.Code("CONFIG_INVALID").Wrapf(err, "parsing environment")
	}
	return nil
}
