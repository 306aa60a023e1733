package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	StorageDriver string
	StorageKey    string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	CommentAuthor string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		StorageDriver: getEnv("STORAGE_DRIVER", DriverSQLite),
		StorageKey:    getEnv("STORAGE_KEY", "kanbanTasks"),
		SQLitePath:    getEnv("SQLITE_PATH", "kanban.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5431"),
		DBUser:        getEnv("DB_USER", "kanban_user"),
		DBPassword:    getEnv("DB_PASSWORD", "kanban_pass"),
		DBName:        getEnv("DB_NAME", "kanban_db"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		CommentAuthor: getEnv("COMMENT_AUTHOR", "Client"),
	}
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
