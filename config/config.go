package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	DefaultPort         = "8000"
	DefaultKafkaTopic   = "reservations"
	DefaultMenuCacheTTL = 30 * time.Second
)

var ErrMissingDatabaseConfig = errors.New("DATABASE_URL and DATABASE_NAME must be set")

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	RedisAddr    string
	MenuCacheTTL time.Duration
	KafkaBroker  string
	KafkaTopic   string
	LogLevel     string
}

// Load reads the process configuration. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	ttl := DefaultMenuCacheTTL
	if raw := os.Getenv("MENU_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		} else {
			slog.Warn("invalid MENU_CACHE_TTL, using default", "value", raw, "default", DefaultMenuCacheTTL)
		}
	}

	return Config{
		Port:         getEnv("PORT", DefaultPort),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		MenuCacheTTL: ttl,
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", DefaultKafkaTopic),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func (c Config) DatabaseURLSet() bool  { return c.DatabaseURL != "" }
func (c Config) DatabaseNameSet() bool { return c.DatabaseName != "" }

// InitMongo builds the process-wide database handle. Unlike the other
// constructors it never exits the process: a nil database means every
// persistence call will fail and the diagnostic endpoint reports it.
func InitMongo(cfg Config) (*mongo.Client, *mongo.Database, error) {
	if !cfg.DatabaseURLSet() || !cfg.DatabaseNameSet() {
		return nil, nil, ErrMissingDatabaseConfig
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		slog.Warn("MongoDB ping failed, keeping handle", "error", err)
	} else {
		slog.Info("MongoDB connection established", "database", cfg.DatabaseName)
	}

	return client, client.Database(cfg.DatabaseName), nil
}

// InitRedis returns nil when REDIS_ADDR is unset or the server does not answer.
func InitRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, menu cache disabled", "addr", cfg.RedisAddr, "error", err)
		client.Close()
		return nil
	}

	return client
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
