package kit

import (
	"strings"

	"github.com/vortex-fintech/go-textkit/validator"
)

const (
	defaultServiceName      = "textkit"
	defaultEnv              = "production"
	defaultMetricsNamespace = "textkit"
)

// Config is filled in code by the embedding application; nothing is read from
// the environment.
type Config struct {
	ServiceName      string `validate:"required,max=64,printascii"`
	Env              string `validate:"required,oneof=development debug production"`
	MetricsNamespace string `validate:"omitempty,max=64"`
	MetricsSubsystem string `validate:"omitempty,max=64"`

	// BatchWorkers bounds phone batch concurrency; 0 means one goroutine per input.
	BatchWorkers int `validate:"gte=0"`
}

func (c Config) withDefaults() Config {
	c.ServiceName = strings.TrimSpace(c.ServiceName)
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.MetricsNamespace) == "" {
		c.MetricsNamespace = defaultMetricsNamespace
	}
	return c
}

// Validate applies defaults and checks the result.
func (c Config) Validate() error {
	return validator.Struct(c.withDefaults())
}
