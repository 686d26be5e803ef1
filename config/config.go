package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// Discord webhook receiving contact form submissions
	DiscordWebhookURL string
	WebhookTimeout    time.Duration
	// Declarative site content (profile, socials, services, clients, projects)
	SiteConfigPath string
	// Origins allowed to call the API cross-origin
	AllowedOrigins []string
	// Remote hosts serving avatars, logos and gallery media
	MediaHosts []string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DiscordWebhookURL: strings.TrimSpace(getEnv("DISCORD_WEBHOOK_URL", "")),
		WebhookTimeout:    time.Duration(getEnvInt("WEBHOOK_TIMEOUT_SECONDS", 10)) * time.Second,
		SiteConfigPath:    getEnv("SITE_CONFIG_PATH", "config.yml"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", []string{"https://xivn.dev"}),
		MediaHosts:        getEnvList("MEDIA_HOSTS", []string{"api.mcheads.org", "via.placeholder.com", "i.imgur.com", "imgur.com"}),
	}

	if cfg.WebhookTimeout <= 0 {
		cfg.WebhookTimeout = 10 * time.Second
	}

	// Missing webhook is not fatal: the site still renders and every
	// contact submission fails with a generic error.
	if cfg.DiscordWebhookURL == "" {
		log.Println("WARNING: DISCORD_WEBHOOK_URL is missing. Contact form submissions will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
