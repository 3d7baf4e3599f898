package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	BackendURL   string
	RedisAddr    string
	CookieName   string
	CookieSecret string
	AllowOrigins string
	FlashTTL     time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:1331/api/v1"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	cookieName := os.Getenv("SESSION_COOKIE")
	if cookieName == "" {
		cookieName = "portal_session"
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	origins := os.Getenv("ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	return Config{
		Port:         port,
		BackendURL:   backend,
		RedisAddr:    redisAddr,
		CookieName:   cookieName,
		CookieSecret: secret,
		AllowOrigins: origins,
		FlashTTL:     time.Duration(readInt("FLASH_TTL_SECONDS", 3)) * time.Second,
	}
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
