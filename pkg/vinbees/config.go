package vinbees

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config carries everything the client needs to talk to the VinBees platform.
// InitData is the chat-platform launch payload forwarded verbatim in the
// Authorization header; the backend owns its verification.
type Config struct {
	BaseURL    string
	InitData   string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Logger     *logrus.Logger
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = 3
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}
	return c
}
