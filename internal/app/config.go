package app

import (
	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/astro-apps/kundali-api/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`

	// KafkaEnabled выключает асинхронную генерацию прогнозов:
	// без Kafka она выполняется синхронно при создании карты
	KafkaEnabled bool `envconfig:"KAFKA_ENABLED" default:"false"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
