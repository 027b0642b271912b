package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	APIBaseURL   string
	APITimeout   time.Duration
	GeoLookupURL string

	// Durable credential store: sqlite, redis or file
	StorageDriver       string
	DBPath              string
	RedisAddr           string
	RedisPort           string
	RedisPassword       string
	SessionFile         string
	RevalidateOnRestore bool

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string
	StaticDir   string

	// Log configuration
	LogLevel      string
	LogFormat     string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8081/api"), "/"),
		APITimeout:   getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		GeoLookupURL: getEnv("GEO_LOOKUP_URL", "https://ipapi.co/json/"),

		StorageDriver:       strings.ToLower(getEnv("STORAGE_DRIVER", "sqlite")),
		DBPath:              getEnv("DB_PATH", "payadmin.db"),
		RedisAddr:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		SessionFile:         getEnv("SESSION_FILE", defaultSessionFile()),
		RevalidateOnRestore: getEnvAsBool("REVALIDATE_ON_RESTORE", false),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getEnvAsDuration("JWT_TTL", 72*time.Hour),

		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		StaticDir:   os.Getenv("STATIC_DIR"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".payadmin-session.json"
	}
	return filepath.Join(home, ".payadmin-session.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
