package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	Salt      string
	AdminSalt string
	Redis     RedisConfig
}

// RedisConfig captures connection settings for the store backend.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SCOREAPI_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	salt := os.Getenv("SCOREAPI_SALT")
	if salt == "" {
		// Development default - override in production deployments.
		salt = "Otus"
	}
	adminSalt := os.Getenv("SCOREAPI_ADMIN_SALT")
	if adminSalt == "" {
		adminSalt = "42"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return Server{
		Addr:      addr,
		Salt:      salt,
		AdminSalt: adminSalt,
		Redis: RedisConfig{
			Addr:         redisAddr,
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           redisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			PoolSize:     10,
		},
	}
}
