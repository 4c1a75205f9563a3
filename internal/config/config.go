package config

import (
	"os"
	"strings"
)

// apiKeyVars lists the environment variables that may carry the Gemini API
// key, checked in priority order. The later names are legacy spellings kept
// so older deployments keep working.
var apiKeyVars = []string{
	"GEMINI_API_KEY",
	"GOOGLE_GENAI_API_KEY",
	"GOOGLE_API_KEY",
	"API_KEY",
}

type Config struct {
	Port           string
	AllowedOrigins []string
	Model          string
	APIKey         string
}

// Load reads the process environment once at startup. The resulting value is
// passed down to services; nothing re-reads env vars after this.
func Load() Config {
	cfg := Config{
		Port:  getenv("PORT", "8080"),
		Model: getenv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	for _, name := range apiKeyVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.APIKey = v
			break
		}
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg
}

// AIConfigured reports whether an API key was found under any accepted name.
func (c Config) AIConfigured() bool { return c.APIKey != "" }

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
