package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Groq     GroqConfig
	Scraper  ScraperConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Path string
}

type GroqConfig struct {
	// APIKey is deliberately not validated at load time; a missing key
	// surfaces as a generation failure string at call time.
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type ScraperConfig struct {
	WebsiteURL string
	Timeout    time.Duration
	CacheTTL   time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "database/chatbot.db"),
		},
		Groq: GroqConfig{
			APIKey:    getEnv("GROQ_API_KEY", ""),
			BaseURL:   getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:     getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			MaxTokens: getEnvAsInt("GROQ_MAX_TOKENS", 600),
		},
		Scraper: ScraperConfig{
			WebsiteURL: getEnv("WEBSITE_URL", "https://toursafaq.com/"),
			Timeout:    getEnvAsDuration("SCRAPE_TIMEOUT", 15*time.Second),
			CacheTTL:   getEnvAsDuration("SCRAPE_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
