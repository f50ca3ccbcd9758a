package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectName string
	Version     string
	APIPrefix   string
	ServerPort  int
	Auth        AuthConfig
	Database    DatabaseConfig
}

type AuthConfig struct {
	Secret         string
	Algorithm      string
	TokenTTLMinute int
}

type DatabaseConfig struct {
	Path string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	authConfig := AuthConfig{
		Secret:         getEnv("JWT_SECRET", ""),
		Algorithm:      getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTLMinute: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
	}

	dbConfig := DatabaseConfig{
		Path: getEnv("DB_PATH", "./data/flowers.db"),
	}

	return Config{
		ProjectName: getEnv("PROJECT_NAME", "ZenGarden Backend"),
		Version:     getEnv("VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		ServerPort:  getEnvInt("SERVER_PORT", 8080),
		Auth:        authConfig,
		Database:    dbConfig,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
