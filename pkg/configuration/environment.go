package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vinbees/hive-sdk/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

// BackendOptions configures the remote VinBees HR platform endpoint.
type BackendOptions struct {
	BaseURL     string        `env:"VINBEES_API_URL" envDefault:"https://bpm.bees.vin/VinBeesTelegram/hs/API"`
	InitData    string        `env:"VINBEES_INIT_DATA"`
	Timeout     time.Duration `env:"VINBEES_API_TIMEOUT" envDefault:"15s"`
	MaxRetries  int           `env:"VINBEES_API_MAX_RETRIES" envDefault:"3"`
	RetryDelay  time.Duration `env:"VINBEES_API_RETRY_DELAY" envDefault:"1s"`
	UserAgent   string        `env:"VINBEES_API_USER_AGENT" envDefault:"hive-sdk"`
	InsecureLog bool          `env:"VINBEES_API_LOG_BODIES" envDefault:"false"`
}

func (b *BackendOptions) Validate() error {
	if b.BaseURL == "" {
		return fmt.Errorf("backend BaseURL is required")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("backend Timeout must be positive, got %s", b.Timeout)
	}
	if b.MaxRetries < 1 {
		return fmt.Errorf("backend MaxRetries must be at least 1, got %d", b.MaxRetries)
	}
	return nil
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	Backend    BackendOptions
	Prometheus PrometheusOptions

	ServerPort       int    `env:"PORT" envDefault:"3200"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	// The SDK looks for this header on the request; absent, it generates a random uuid.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`

	// Search result cap for the org chart, matching the canonical client.
	OrgSearchLimit int `env:"ORG_SEARCH_LIMIT" envDefault:"150"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.Backend.Validate(); err != nil {
		return fmt.Errorf("backend configuration error: %w", err)
	}
	if c.OrgSearchLimit < 1 {
		return fmt.Errorf("ORG_SEARCH_LIMIT must be positive, got %d", c.OrgSearchLimit)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	return nil
}

func (c *Configuration) Unload() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}
