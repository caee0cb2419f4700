package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBSource    string
	CartStorage string // "file" or "redis"
	CartDir     string
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string
	TokenSecret string
	TokenTTL    time.Duration

	CatalogRefresh time.Duration

	UPIID    string
	UPIPayee string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		DBSource:    getEnv("DB_SOURCE", "tastyeats.db"),
		CartStorage: getEnv("CART_STORAGE", "file"),
		CartDir:     getEnv("CART_DIR", "carts"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "tastyeats.orders"),
		TokenSecret: getEnv("TOKEN_SECRET", "changeme"),
		// Customer identifier cookie lives about a year.
		TokenTTL:       time.Duration(365*24) * time.Hour,
		CatalogRefresh: time.Duration(getEnvInt("CATALOG_REFRESH_SECONDS", 60)) * time.Second,
		UPIID:          getEnv("UPI_ID", "tastyeats@okaxis"),
		UPIPayee:       getEnv("UPI_PAYEE", "TastyEats Downtown Kitchen"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
