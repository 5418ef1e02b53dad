package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName          string
	HTTPAddr         string
	RedisHost        string
	RedisPort        string
	PostgresHost     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
}

// Load reads configuration from the environment. Defaults assume a
// co-located deployment where redis and postgres resolve by name.
func Load() *Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	return &Config{
		AppName:          getEnv("SERVICE_NAME", "message-log"),
		HTTPAddr:         fixPort(getEnv("HTTP_ADDR", ":8000")),
		RedisHost:        getEnv("REDIS_HOST", "redis"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		PostgresHost:     getEnv("POSTGRES_HOST", "postgres"),
		PostgresDB:       getEnv("POSTGRES_DB", "demo"),
		PostgresUser:     getEnv("POSTGRES_USER", "demo"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "demo123"),
	}
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s dbname=%s user=%s password=%s sslmode=disable",
		c.PostgresHost, c.PostgresDB, c.PostgresUser, c.PostgresPassword)
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
