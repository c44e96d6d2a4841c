package bootstrap

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/todo/config"
)

// LoadConfig loads the application configuration.
// Flags from flagSet override config file and environment values.
func LoadConfig(flagSet *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadConfig(flagSet)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
