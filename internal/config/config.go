package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	MySQLHost     string
	MySQLPort     int
	MySQLUser     string
	MySQLPassword string
	MySQLDatabase string
	MySQLSSL      bool

	SQLitePath string
	UsersFile  string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLHost:     os.Getenv("MYSQL_HOST"),
		MySQLPort:     getEnvInt("MYSQL_PORT", 3306),
		MySQLUser:     os.Getenv("MYSQL_USER"),
		MySQLPassword: os.Getenv("MYSQL_PASSWORD"),
		MySQLDatabase: os.Getenv("MYSQL_DATABASE"),
		MySQLSSL:      os.Getenv("MYSQL_SSL") == "true",
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		UsersFile:     getEnv("USERS_FILE", "users.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
}

// HasMySQL reports whether the MySQL connection variables are complete.
func (c *Config) HasMySQL() bool {
	return c.MySQLHost != "" && c.MySQLUser != "" && c.MySQLDatabase != ""
}

// HasSQLite reports whether a SQLite database path is configured.
func (c *Config) HasSQLite() bool {
	return c.SQLitePath != ""
}

// MySQLDSN assembles the go-sql-driver DSN from the discrete variables.
func (c *Config) MySQLDSN() string {
	tls := "false"
	if c.MySQLSSL {
		tls = "skip-verify"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase, tls)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
