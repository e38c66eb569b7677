package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Redis (chat history cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Auth configuration
	JWTKey         string
	GoogleClientID string

	// AI collaborators
	GeminiAPIKey     string
	ElevenLabsAPIKey string
	ElevenLabsVoice  string

	// Media pipeline
	AudioDir    string
	RhubarbPath string

	// CORS
	AllowOrigins string
}

// Load loads configuration from environment variables, reading an
// optional .env file first.
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		JWTKey:            getEnv("JWT_KEY", ""),
		GoogleClientID:    getEnv("GOOGLE_CLIENT_ID", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoice:   getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		AudioDir:          getEnv("AUDIO_DIR", "audios"),
		RhubarbPath:       getEnv("RHUBARB_PATH", filepath.Join("bin", "rhubarb")),
		AllowOrigins:      getEnv("ALLOW_ORIGINS", "http://localhost:5173"),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBUser == "" && cfg.DBType != "sqlite" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if cfg.JWTKey == "" {
		return nil, fmt.Errorf("JWT_KEY is required")
	}

	return cfg, nil
}

// loadDotenv loads the first .env file found walking up from the
// working directory. Missing files are fine; the environment wins.
func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
