package config

import (
	"fmt"
	"os"
	"strings"
)

// Config carries everything the API needs from the environment.
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string

	JWTSecret string

	GoEnv string // dev/prod
	FEURL string // storefront URL (CORS, gateway back_urls)

	// Mercado Pago
	MPAccessToken string
	// Public base URL of this API; the gateway posts webhooks to
	// <APIBaseURL>/webhooks/mercadopago.
	APIBaseURL string

	// Optional: cart session persistence. Empty disables Redis.
	RedisAddr string

	// Optional: order events for the email dispatcher. Empty disables Kafka.
	KafkaBrokers []string
	KafkaTopic   string
}

func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),

		MPAccessToken: os.Getenv("MP_ACCESS_TOKEN"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),

		RedisAddr:  os.Getenv("REDIS_ADDR"),
		KafkaTopic: os.Getenv("KAFKA_TOPIC"),
	}

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}
	if cfg.MPAccessToken == "" {
		return Config{}, fmt.Errorf("MP_ACCESS_TOKEN is required")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		return Config{}, fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}
