package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries everything the service reads from the environment. Built
// once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port           string
	APIKey         string
	BaseURL        string
	Model          string
	MaxPages       int
	MaxChars       int
	DataRoot       string
	FrontendOrigin string
}

func FromEnv() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		APIKey:         strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL:        getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:          getenv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxPages:       getint("MAX_PAGES", 12),
		MaxChars:       getint("MAX_PROMPT_CHARS", 30000),
		DataRoot:       getenv("DATA_ROOT", "./uploads"),
		FrontendOrigin: getenv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}
}

// HasLLM reports whether a structured-extraction credential is configured.
func (c Config) HasLLM() bool { return c.APIKey != "" }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
