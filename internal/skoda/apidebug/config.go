package apidebug

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the process-wide debug-logging settings. It is read once at
// startup and passed to LogExtraKeys rather than consulting the environment
// on every call.
type Config struct {
	// ShowExtraKeys escalates unexpected-key reports from DEBUG to INFO.
	// Controlled by the environment variable CARCONNECTIVITY_SHOW_EXTRA_KEYS:
	// "1" or "true" (any case) enables it, everything else leaves it off.
	ShowExtraKeys bool
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("carconnectivity")
	v.AutomaticEnv()
	_ = v.BindEnv("show_extra_keys")

	return &Config{
		ShowExtraKeys: parseToggle(v.GetString("show_extra_keys")),
	}
}

func parseToggle(raw string) bool {
	return raw == "1" || strings.EqualFold(raw, "true")
}
