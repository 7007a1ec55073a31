package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minSecretKeyLength = 32

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	SecretKey          string
	AdminPassword      string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	FruityViceBaseURL  string
	PicsumBaseURL      string
	FCMCredentialsFile string
	DBPath             string
	Port               string
	Location           *time.Location
	CookieSecure       bool
	UpstreamTimeout    time.Duration
	RequestIDNode      int64
}

// Load reads .env when present and validates the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	adminPassword, err := requireEnv("ADMIN_PASSWORD")
	if err != nil {
		return Config{}, err
	}
	geminiAPIKey, err := requireEnv("GEMINI_API_KEY")
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	timeout, err := resolveDuration("UPSTREAM_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	location, err := resolveLocation()
	if err != nil {
		return Config{}, err
	}
	node, err := resolveRequestIDNode()
	if err != nil {
		return Config{}, err
	}

	return Config{
		SecretKey:          secretKey,
		AdminPassword:      adminPassword,
		GeminiAPIKey:       geminiAPIKey,
		GeminiModel:        getEnv("GEMINI_MODEL", ""),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", ""),
		FruityViceBaseURL:  getEnv("FRUITYVICE_BASE_URL", ""),
		PicsumBaseURL:      getEnv("PICSUM_BASE_URL", ""),
		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "nutritrack.db")),
		Port:               port,
		Location:           location,
		CookieSecure:       parseBool(os.Getenv("COOKIE_SECURE")),
		UpstreamTimeout:    timeout,
		RequestIDNode:      node,
	}, nil
}

// DBPathFromEnv is for commands that only need the database.
func DBPathFromEnv() string {
	_ = godotenv.Load()
	return getEnv("DB_PATH", filepath.Join("data", "nutritrack.db"))
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("PORT must be numeric: %w", err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT %d is out of range", port)
	}
	return raw, nil
}

// resolveRequestIDNode reads SNOWFLAKE_NODE, which must fit the 10-bit snowflake node field.
func resolveRequestIDNode() (int64, error) {
	raw := getEnv("SNOWFLAKE_NODE", "1")
	node, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("SNOWFLAKE_NODE must be numeric: %w", err)
	}
	if node < 0 || node > 1023 {
		return 0, fmt.Errorf("SNOWFLAKE_NODE %d is out of range", node)
	}
	return node, nil
}

func resolveDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return duration, nil
}

func resolveLocation() (*time.Location, error) {
	name := getEnv("TZ", "UTC")
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
