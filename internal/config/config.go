package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	BackendBaseURL       string
	BackendChatTimeout   time.Duration
	BackendTopicsTimeout time.Duration

	JWTSecret       string
	SessionTokenTTL time.Duration
	SessionTTL      time.Duration

	// When true, out-of-domain profile values come back as HTTP 400
	// instead of being silently ignored.
	StrictProfileValidation bool

	LogFile string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "logs/travelai.log"
	}

	return Config{
		Port: port,
		Env:  env,

		BackendBaseURL:       backendURL,
		BackendChatTimeout:   envSeconds("BACKEND_CHAT_TIMEOUT_SECONDS", 45),
		BackendTopicsTimeout: envSeconds("BACKEND_TOPICS_TIMEOUT_SECONDS", 15),

		JWTSecret:       secret,
		SessionTokenTTL: envSeconds("SESSION_TOKEN_TTL_SECONDS", 24*3600),
		SessionTTL:      envSeconds("SESSION_TTL_SECONDS", 24*3600),

		StrictProfileValidation: os.Getenv("STRICT_PROFILE_VALIDATION") == "true",

		LogFile: logFile,
	}
}

func (c Config) IsProd() bool {
	return c.Env == "prod"
}

func envSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
