package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string               `yaml:"port" json:"port" env:"PORT" env-default:"8080"`
	AppEnv      string               `yaml:"appEnv" json:"appEnv" env:"APP_ENV" env-default:"development"`
	LogLevel    string               `yaml:"logLevel" json:"logLevel" env:"LOG_LEVEL" env-default:"info"`
	FrontendURL string               `yaml:"frontendUrl" json:"frontendUrl" env:"FRONTEND_URL" env-default:"*"`
	Database    TodoDatabaseSettings `yaml:"todoDatabaseSettings" json:"todoDatabaseSettings"`
}

// TodoDatabaseSettings locates the document store. Nothing here is validated;
// a bad host or database name shows up on the first query.
type TodoDatabaseSettings struct {
	ConnectionString string        `yaml:"connectionString" json:"connectionString" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	DatabaseName     string        `yaml:"databaseName" json:"databaseName" env:"MONGO_DB" env-default:"TodoDb"`
	ConnectTimeout   time.Duration `yaml:"connectTimeout" json:"connectTimeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	MaxPool          uint64        `yaml:"maxPool" json:"maxPool" env:"MONGO_MAX_POOL" env-default:"100"`
	MinPool          uint64        `yaml:"minPool" json:"minPool" env:"MONGO_MIN_POOL" env-default:"0"`
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the environment.
// Environment variables win over file values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
