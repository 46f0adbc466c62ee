package utils

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort  string `yaml:"APP_PORT" env:"APP_PORT"`
	LogFile  string `yaml:"LOG_FILE" env:"LOG_FILE"`
	TimeZone string `yaml:"TIME_ZONE" env:"TIME_ZONE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET" env:"JWT_SECRET"`

	// USDA FoodData Central configuration
	USDAAPIKey          string `yaml:"USDA_API_KEY" env:"USDA_API_KEY"`
	USDAAPIURL          string `yaml:"USDA_API_URL" env:"USDA_API_URL"`
	USDARequestsPerHour string `yaml:"USDA_REQUESTS_PER_HOUR" env:"USDA_REQUESTS_PER_HOUR"`
	USDATimeoutSeconds  string `yaml:"USDA_TIMEOUT_SECONDS" env:"USDA_TIMEOUT_SECONDS"`
}

var config Config

func LoadConfig() {
	LoadConfigFrom("config.yaml", ".env")
}

// LoadConfigFrom reads the YAML file, then lets environment variables (and a
// .env file when one exists) override individual keys.
func LoadConfigFrom(yamlPath, envPath string) {
	config = Config{}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Error reading env file: %s\n", err)
		}
	}

	file, err := os.ReadFile(yamlPath)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	// Unset or empty variables leave the YAML value in place.
	if err := env.Parse(&config); err != nil {
		log.Printf("Error reading environment: %s\n", err)
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return withDefault(config.AppPort, "8080")
	case "LOG_FILE":
		return withDefault(config.LogFile, "./logs/app.log")
	case "TIME_ZONE":
		return withDefault(config.TimeZone, "Asia/Jakarta")
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "USDA_API_KEY":
		return config.USDAAPIKey
	case "USDA_API_URL":
		return config.USDAAPIURL
	case "USDA_REQUESTS_PER_HOUR":
		return config.USDARequestsPerHour
	case "USDA_TIMEOUT_SECONDS":
		return config.USDATimeoutSeconds
	default:
		return ""
	}
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
