package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	OriginURL  string
	StoreName  string
	StoreEmail string
	StorePhone string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("APP_PORT", getEnv("PORT", "5000")),
		OriginURL:  getEnv("ORIGIN_URL", ""),
		StoreName:  getEnv("STORE_NAME", "KGS Guns & Gear"),
		StoreEmail: getEnv("STORE_EMAIL", "sales@kgsguns.com"),
		StorePhone: getEnv("STORE_PHONE", "(512) 555-0147"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
