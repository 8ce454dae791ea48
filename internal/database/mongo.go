// ================== internal/database/mongo.go ==================
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xyz-asif/todo-mongo/internal/config"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Config represents database configuration
type Config struct {
	ConnectionString string
	DatabaseName     string
	ConnectTimeout   time.Duration
	MaxPool          uint64
	MinPool          uint64
}

// DefaultConfig returns default database configuration
func DefaultConfig() *Config {
	return &Config{
		ConnectionString: "mongodb://localhost:27017",
		DatabaseName:     "TodoDb",
		ConnectTimeout:   10 * time.Second,
		MaxPool:          100,
	}
}

// FromSettings maps the application settings onto a database Config.
func FromSettings(s config.TodoDatabaseSettings) *Config {
	cfg := DefaultConfig()
	if s.ConnectionString != "" {
		cfg.ConnectionString = s.ConnectionString
	}
	if s.DatabaseName != "" {
		cfg.DatabaseName = s.DatabaseName
	}
	if s.ConnectTimeout > 0 {
		cfg.ConnectTimeout = s.ConnectTimeout
	}
	if s.MaxPool > 0 {
		cfg.MaxPool = s.MaxPool
	}
	cfg.MinPool = s.MinPool
	return cfg
}

// ClientOptions builds the driver options for cfg.
func (cfg *Config) ClientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.ConnectionString)
	opts.SetMaxPoolSize(cfg.MaxPool)
	opts.SetMinPoolSize(cfg.MinPool)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	opts.SetServerSelectionTimeout(cfg.ConnectTimeout)
	opts.SetMaxConnIdleTime(30 * time.Second)
	return opts
}

// Connect creates the client without talking to the server. Unreachable hosts
// or bad credentials show up on first use; only an unparsable connection string
// fails here.
func Connect(cfg *Config) (*MongoDB, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	client, err := mongo.Connect(context.Background(), cfg.ClientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.DatabaseName),
	}, nil
}

// Ping checks if the primary is reachable
func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
