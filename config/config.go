package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int
	TokenTTL  int // access token lifetime in minutes

	AllowedOrigins string

	AIProvider   string // "openai" or "gemini"
	OpenAIKey    string
	OpenAIApiURL string
	GeminiKey    string
	GeminiApiURL string
	LLMTimeout   int // seconds per LLM/vector call
	LLMRetries   int

	WeaviateURL  string
	SearchApiURL string

	SendgridKey string
	FromEmail   string

	PushApiURL string
	PushApiKey string

	EnableBackgroundTasks bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "8000"),
		JWTKey:    getEnv("SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),
		TokenTTL:  getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000"),

		AIProvider:   getEnv("AI_PROVIDER", "openai"),
		OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIApiURL: getEnv("OPENAI_API_URL", "https://api.openai.com"),
		GeminiKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiApiURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		LLMTimeout:   getEnvInt("LLM_TIMEOUT_SECONDS", 60),
		LLMRetries:   getEnvInt("LLM_RETRY_COUNT", 2),

		WeaviateURL:  getEnv("WEAVIATE_URL", "http://localhost:8080"),
		SearchApiURL: getEnv("SEARCH_API_URL", "https://api.duckduckgo.com"),

		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:   getEnv("FROM_EMAIL", "noreply@curriculumarchitect.com"),

		PushApiURL: getEnv("PUSH_API_URL", ""),
		PushApiKey: getEnv("PUSH_API_KEY", ""),

		EnableBackgroundTasks: getEnvBool("ENABLE_BACKGROUND_TASKS", true),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.OpenAIKey == "" && AppConfig.GeminiKey == "" {
		log.Println("Warning: No AI provider key configured. Curriculum generation and chat will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
