package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageTypePostgres = "postgres"
	StorageTypeInMemory = "inmemory"
)

type Config struct {
	Postgres     PostgresConfig
	HTTP         HTTPConfig
	Log          LogConfig
	NATS         NATSConfig
	StorageType  string
	MutationMode string
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
	Schema   string
	MaxConns int32
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type LogConfig struct {
	Format string
	Level  string
}

type NATSConfig struct {
	URL string
}

func LoadConfig() Config {
	storageType := getEnv("STORAGE_TYPE", StorageTypePostgres)

	cfg := Config{
		StorageType:  storageType,
		MutationMode: getEnv("MUTATION_MODE", "sequential"),
		HTTP: HTTPConfig{
			Port:               getEnv("HTTP_PORT", "9999"),
			CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout:    time.Duration(getInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Format: getEnv("LOG_FORMAT", "text"),
			Level:  getEnv("LOG_LEVEL", "info"),
		},
		NATS: NATSConfig{
			URL: os.Getenv("NATS_URL"),
		},
	}

	if storageType == StorageTypePostgres {
		cfg.Postgres = PostgresConfig{
			User:     mustGetEnv("POSTGRES_USER"),
			Password: mustGetEnv("POSTGRES_PASSWORD"),
			DB:       mustGetEnv("POSTGRES_DB"),
			Host:     mustGetEnv("POSTGRES_HOST"),
			Port:     mustGetInt("POSTGRES_PORT"),
			SSLMode:  mustGetEnv("POSTGRES_SSLMODE"),
			Schema:   getEnv("POSTGRES_SCHEMA", "social"),
			MaxConns: getPositiveInt32("POSTGRES_MAX_CONNS", 10),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if os.Getenv(key) == "" {
		return def
	}
	return mustGetInt(key)
}

func getPositiveInt32(key string, def int32) int32 {
	i := getInt(key, int(def))
	if i <= 0 || i > math.MaxInt32 {
		panic("out of range int for env var " + key + ": " + strconv.Itoa(i))
	}
	return int32(i)
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
