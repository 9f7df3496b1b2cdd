package config

import "time"

// BackendConfig contains the action gateway configuration.
type BackendConfig struct {
	// URL is the backend's single action endpoint.
	URL string `env:"URL" envDefault:"http://localhost:9000/api"`

	// Timeout bounds each attempt of an action call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// RetryAttempts is the total number of tries per call.
	RetryAttempts int `env:"RETRY_ATTEMPTS" envDefault:"3"`

	// RetryDelay is the linear backoff unit between tries.
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"1s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
	if b.RetryAttempts < 1 {
		b.RetryAttempts = 1
	}
	if b.RetryAttempts > 10 {
		b.RetryAttempts = 10
	}
	if b.RetryDelay < 0 {
		b.RetryDelay = 0
	}
}
