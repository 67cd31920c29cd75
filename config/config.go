package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDataFile   = "Record.DAT"
	DefaultArchiveDSN = "off"
	DefaultLogDir     = "logs"
	DefaultLogLevel   = "info"
)

// Config holds every setting; each has a default so none is required.
type Config struct {
	DataFile   string
	ArchiveDSN string
	LogDir     string
	LogLevel   string
}

// Load reads an optional .env file, then the HMS_* environment variables.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; using defaults and environment variables")
	}

	return Config{
		DataFile:   envOrDefault("HMS_DATA_FILE", DefaultDataFile),
		ArchiveDSN: envOrDefault("HMS_ARCHIVE_DSN", DefaultArchiveDSN),
		LogDir:     envOrDefault("HMS_LOG_DIR", DefaultLogDir),
		LogLevel:   envOrDefault("HMS_LOG_LEVEL", DefaultLogLevel),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
