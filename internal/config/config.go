package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBPath        string
	SessionSecret string
	ServerPort    string
}

func Load() *Config {
	return &Config{
		DBPath:        getEnv("DB_PATH", "crm.sqlite3"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
