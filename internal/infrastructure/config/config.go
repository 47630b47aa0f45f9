package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Mail   MailConfig
	Notify NotifyConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blood_donation"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type MailConfig struct {
	Domain      string        `env:"MAILGUN_DOMAIN"`
	APIKey      string        `env:"MAILGUN_API_KEY"`
	Sender      string        `env:"MAIL_SENDER, default=Blood Donation Support <no-reply@localhost>"`
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT, default=10s"`
}

type NotifyConfig struct {
	Workers   int           `env:"NOTIFY_WORKERS,    default=4"`
	QueueSize int           `env:"NOTIFY_QUEUE_SIZE, default=256"`
	DedupTTL  time.Duration `env:"NOTIFY_DEDUP_TTL,  default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
