package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverSQLite  = "sqlite"
	StoreDriverMongoDB = "mongodb"
)

type Config struct {
	Env                 string        `envconfig:"ENV" default:"dev"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`
	Port                int           `envconfig:"PORT" default:"8080"`
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`

	StoreDriver   string `envconfig:"FORUM_STORE_DRIVER" default:"sqlite"`
	DatabaseFile  string `envconfig:"FORUM_DATABASE_FILE" default:"forum.db"`
	MongoURI      string `envconfig:"FORUM_MONGODB_URI" default:"mongodb://localhost:27017/?replicaSet=rs0"`
	MongoDatabase string `envconfig:"FORUM_MONGODB_DATABASE" default:"forum"`

	JWTSecret   string   `envconfig:"FORUM_JWT_SECRET" required:"true"`
	JWTIssuer   string   `envconfig:"FORUM_JWT_ISSUER"`
	JWTAudience []string `envconfig:"FORUM_JWT_AUDIENCE"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read configuration from environment: %w", err)
	}

	// required only catches an unset variable, not an empty one
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("FORUM_JWT_SECRET must not be empty")
	}

	switch cfg.StoreDriver {
	case StoreDriverSQLite, StoreDriverMongoDB:
	default:
		return Config{}, fmt.Errorf("unsupported FORUM_STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}
