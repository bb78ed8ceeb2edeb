package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		LogLevel  string `env:"APP_LOG_LEVEL" env-default:"info"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Replay struct {
		TickInterval    time.Duration `env:"REPLAY_TICK_INTERVAL" env-default:"100ms"`
		ProgressStep    float64       `env:"REPLAY_PROGRESS_STEP" env-default:"2"`
		ExitDelay       time.Duration `env:"REPLAY_EXIT_DELAY" env-default:"150ms"`
		EnterDelay      time.Duration `env:"REPLAY_ENTER_DELAY" env-default:"300ms"`
		LikeBurst       time.Duration `env:"REPLAY_LIKE_BURST" env-default:"1s"`
		DismissDistance float64       `env:"REPLAY_DISMISS_DISTANCE" env-default:"100"`
		DismissVelocity float64       `env:"REPLAY_DISMISS_VELOCITY" env-default:"500"`
		DragResistance  float64       `env:"REPLAY_DRAG_RESISTANCE" env-default:"0.55"`
		DragMaxOffset   float64       `env:"REPLAY_DRAG_MAX_OFFSET" env-default:"200"`
	}
	Coordinator struct {
		Workers        int           `env:"COORDINATOR_WORKERS" env-default:"4"`
		RequestTimeout time.Duration `env:"COORDINATOR_REQUEST_TIMEOUT" env-default:"10s"`
		ActionsPer     time.Duration `env:"COORDINATOR_ACTIONS_PER" env-default:"1s"`
		ActionsBurst   int           `env:"COORDINATOR_ACTIONS_BURST" env-default:"5"`
	}
	Expiry struct {
		TTL           time.Duration `env:"STORY_TTL" env-default:"24h"`
		SweepInterval time.Duration `env:"STORY_SWEEP_INTERVAL" env-default:"1h"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string in URL form.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
