package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Platform holds deployment settings read from the environment.
type Platform struct {
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	HTTPAddr      string
	SSHAddr       string
	Audio         bool
	LogLevel      string
}

// LoadPlatform reads platform settings from .env (if present) and the
// process environment. Missing keys fall back to defaults.
func LoadPlatform() Platform {
	_ = godotenv.Load()

	p := Platform{
		DBPath:        os.Getenv("ARCADE_DB"),
		RedisAddr:     os.Getenv("ARCADE_REDIS_ADDR"),
		RedisPassword: os.Getenv("ARCADE_REDIS_PASSWORD"),
		HTTPAddr:      os.Getenv("ARCADE_HTTP_ADDR"),
		SSHAddr:       os.Getenv("ARCADE_SSH_ADDR"),
		LogLevel:      os.Getenv("ARCADE_LOG_LEVEL"),
		Audio:         os.Getenv("ARCADE_AUDIO") == "true",
	}

	if v := os.Getenv("ARCADE_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.RedisDB = n
		}
	}
	if p.HTTPAddr == "" {
		p.HTTPAddr = ":8080"
	}
	if p.SSHAddr == "" {
		p.SSHAddr = ":2222"
	}
	if p.LogLevel == "" {
		p.LogLevel = "warn"
	}
	return p
}
