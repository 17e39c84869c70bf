// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds everything the commands inject into the modules.
type Config struct {
	Port        string
	DatabaseURL string

	// LLM completion service (OpenAI-compatible endpoint).
	LLMAPIBase     string
	LLMAPIKey      string
	LLMModel       string
	LLMTemperature float32
	LLMMaxTokens   int

	// Chat pipeline.
	MaxHistory int

	// Base URL the chat module uses to reach the catalog tools.
	ToolBaseURL string
}

// Load reads configuration from environment variables. A .env file, if
// any, is loaded by the command before calling Load.
func Load() *Config {
	port := getEnv("PORT", "8080")

	return &Config{
		Port:           port,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LLMAPIBase:     os.Getenv("LLM_API_BASE"),
		LLMAPIKey:      os.Getenv("LLM_API_KEY"),
		LLMModel:       getEnv("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1024),
		MaxHistory:     getEnvInt("MAX_HISTORY", 12),
		ToolBaseURL:    getEnv("TOOL_BASE_URL", "http://localhost:"+port),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float32) float32 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultVal
}
