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
	App       AppConfig
	Database  DatabaseConfig
	Providers ProviderConfig
	Corpus    CorpusConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type ProviderConfig struct {
	MusixmatchKey     string
	MusixmatchBaseURL string
	WikiquoteBaseURL  string
	Timeout           time.Duration
}

type CorpusConfig struct {
	TTL             time.Duration
	FilterWords     []string
	DictionariesDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Providers: ProviderConfig{
			MusixmatchKey:     getEnv("MUSIXMATCH_API_KEY", ""),
			MusixmatchBaseURL: getEnv("MUSIXMATCH_BASE_URL", ""),
			WikiquoteBaseURL:  getEnv("WIKIQUOTE_BASE_URL", ""),
			Timeout:           getEnvAsSeconds("PROVIDER_TIMEOUT_SECONDS", 10),
		},
		Corpus: CorpusConfig{
			TTL:             getEnvAsSeconds("CORPUS_TTL_SECONDS", 300),
			FilterWords:     getEnvAsList("FILTER_WORDS", nil),
			DictionariesDir: getEnv("DICTIONARIES_DIR", "./dictionaries"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsSeconds(key string, fallback int) time.Duration {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(value) * time.Second
	}
	return time.Duration(fallback) * time.Second
}

func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
