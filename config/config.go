package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	// Optional fallback-planner table overrides.
	CategoryCSV  string
	ResourceXLSX string

	// Library URL ingestion. Empty domain list disables it.
	LibraryDomains  []string
	LibraryMaxBytes int

	// Plan generation rate limit, requests/second per client IP.
	RateLimitRPS float64

	RequireUser bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				return f
			}
		}
		return def
	}

	var domains []string
	for _, d := range strings.Split(get("LIBRARY_ALLOWED_DOMAINS", ""), ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}

	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "studyplan.db"),
		LLMEndpoint:     get("LLM_ENDPOINT", ""),
		LLMAPIKey:       get("LLM_API_KEY", ""),
		LLMModel:        get("LLM_MODEL", "gpt-4o-mini"),
		CategoryCSV:     get("CATEGORY_CSV", ""),
		ResourceXLSX:    get("RESOURCE_XLSX", ""),
		LibraryDomains:  domains,
		LibraryMaxBytes: getInt("LIBRARY_MAX_BYTES_PER_PAGE", 1500000),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 1),
		RequireUser:     get("REQUIRE_USER", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s llm_configured=%t model=%s", cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "", cfg.LLMModel)
	return cfg
}
