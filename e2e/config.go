package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DEBUG_EVENTS dumps every captured delivery while waiting
	DebugEvents bool `envconfig:"E2E_DEBUG_EVENTS" default:"false"`
	// E2E_WAIT_TIMEOUT bounds how long a step waits for async deliveries
	WaitTimeout time.Duration `envconfig:"E2E_WAIT_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
