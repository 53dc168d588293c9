package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   DB
	JWT  JWT

	KafkaBrokers      []string
	KafkaTopicEmail   string
	KafkaWriteTimeout time.Duration
}

type DB struct {
	database.Config
}

type JWT struct {
	AccessSecret  string
	Issuer        string
	Audience      string
	AccessTTL     time.Duration
	ActivationTTL time.Duration
}

// NotifierConfig — конфигурация воркера отправки писем (cmd/notifier).
type NotifierConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	TMPLDir string

	KafkaBrokers []string
	KafkaGroupID string
	KafkaTopic   string
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		JWT: JWT{
			AccessSecret:  getEnv("JWT_ACCESS_SECRET", log),
			Issuer:        getEnv("JWT_ISSUER", log),
			Audience:      getEnv("JWT_AUDIENCE", log),
			AccessTTL:     durationDefault(os.Getenv("JWT_ACCESS_TTL"), 24*time.Hour),
			ActivationTTL: durationDefault(os.Getenv("JWT_ACTIVATION_TTL"), 24*time.Hour),
		},
		// Kafka опционален: без брокеров сервис работает, но письма не шлёт
		KafkaBrokers:      splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopicEmail:   os.Getenv("KAFKA_TOPIC_EMAIL"),
		KafkaWriteTimeout: durationDefault(os.Getenv("KAFKA_WRITE_TIMEOUT"), 5*time.Second),
	}
}

func LoadNotifier(log *zap.Logger) *NotifierConfig {
	return &NotifierConfig{
		SMTPHost:     getEnv("SMTP_HOST", log),
		SMTPPort:     getEnvInt("SMTP_PORT", log),
		SMTPUser:     getEnv("SMTP_USER", log),
		SMTPPassword: getEnv("SMTP_PASSWORD", log),
		SMTPFrom:     getEnv("SMTP_FROM", log),
		TMPLDir:      getEnv("TMPL_DIR", log),
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", log),
		KafkaTopic:   getEnv("KAFKA_TOPIC_EMAIL", log),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvInt(key string, log *zap.Logger) int {
	valStr := getEnv(key, log)
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("Ошибка преобразования переменной окружения в int", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}

func durationDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
