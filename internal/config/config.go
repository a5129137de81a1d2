package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	BaseURL string

	StripeSecretKey     string
	StripeWebhookSecret string

	EmailHost string
	EmailPort string
	EmailUser string
	EmailPass string
	EmailFrom string

	DBPath       string
	SessionKey   []byte
	CSRFKey      []byte
	CookieSecure bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		EmailHost:    getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:    getEnv("EMAIL_PORT", "587"),
		EmailUser:    os.Getenv("EMAIL_USER"),
		EmailPass:    os.Getenv("EMAIL_PASS"),
		EmailFrom:    getEnv("EMAIL_FROM", "LUXE WIGS <noreply@example.com>"),
		DBPath:       getEnv("DB_PATH", ""),
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
	}

	// Stripe key is the one hard requirement; the process refuses to start
	// without it.
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is required")
	}

	cfg.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	if cfg.StripeWebhookSecret == "" {
		slog.Warn("STRIPE_WEBHOOK_SECRET not set. Webhook signature verification will reject all events. PLEASE SET IT IN PRODUCTION!")
	}

	if !cfg.EmailConfigured() {
		slog.Warn("EMAIL configuration incomplete - order confirmation emails will not work. Add EMAIL_USER and EMAIL_PASS. Daily countdown emails will also be disabled.")
	}

	// Session Key (cart cookie integrity)
	cfg.SessionKey = loadKey("SESSION_KEY")
	// CSRF Key (cart mutation routes)
	cfg.CSRFKey = loadKey("CSRF_KEY")

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "3000"
	}

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:"+cfg.Port)

	return cfg, nil
}

// EmailConfigured reports whether the SMTP transport can be used. Its absence
// disables email but not payments.
func (c *Config) EmailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// loadKey decodes a base64 key from the environment, falling back to a
// random development key with a warning.
func loadKey(envName string) []byte {
	keyStr := os.Getenv(envName)
	if keyStr == "" {
		slog.Warn(envName + " environment variable not set. Generating a random key for development. This key will change on each restart. PLEASE SET " + envName + " IN PRODUCTION!")
		return generateRandomBytes(32)
	}
	decodedKey, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil || len(decodedKey) < 32 {
		slog.Warn(envName + " is invalid or too short (min 32 bytes recommended). Generating a random key for development. PLEASE SET A SECURE " + envName + " IN PRODUCTION!")
		return generateRandomBytes(32)
	}
	return decodedKey
}

// generateRandomBytes generates a random byte slice of specified length
// Uses crypto/rand for secure random numbers.
func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil { // Use crypto/rand
		slog.Error("Failed to read random bytes", "error", err)
		// Fallback to a less secure random string if crypto/rand fails
		fallbackKey := "fallback-insecure-key-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		if len(fallbackKey) < n {
			paddedKey := make([]byte, n)
			copy(paddedKey, fallbackKey)
			return paddedKey
		}
		return []byte(fallbackKey)[:n]
	}
	return b
}
