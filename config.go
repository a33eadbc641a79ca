package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	Port        string
	Source      string
	CSVPath     string
	Season      int
	DBDriver    string
	DBDSN       string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
}

const (
	sourceCSV = "csv"
	sourceDB  = "db"
)

// loadConfig reads configuration from the environment, after merging a .env file
// if one exists. Variables already set win over the file.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	return Config{
		Port:        getEnv("PORT", "8050"),
		Source:      getEnv("PAV_SOURCE", sourceCSV),
		CSVPath:     getEnv("PAV_CSV_PATH", "data/2023_HPN.csv"),
		Season:      getEnvInt("PAV_SEASON", 2023),
		DBDriver:    getEnv("PAV_DB_DRIVER", "sqlite"),
		DBDSN:       getEnv("PAV_DB_DSN", defaultDSN()),
		CORSOrigins: strings.Fields(getEnv("PAV_CORS_ORIGINS", "")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not a number, using default")
		return defaultValue
	}
	return n
}

func (c Config) addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func setupLogging(c Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
