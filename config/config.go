package config

import (
	"os"
	"strconv"
	"time"
)

const (
	SOURCE_CSV    = "csv"
	SOURCE_DYNAMO = "dynamodb"

	// Score TTLs are sent to Valkey in whole milliseconds.
	MIN_SCORE_CACHE_TTL = time.Millisecond
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	CommentsSource string
	CSVPath        string
	CommentColumn  string

	CommentsTable string
	AWSEndpoint   string
	AWSRegion     string

	NormalizeMarkdown bool

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool
	ScoreCacheTTL  time.Duration
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue, minimum time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < minimum {
		return defaultValue
	}
	return d
}

// Load reads the process configuration from the environment. Call LoadEnv
// first so values from the dotenv file are visible.
func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CommentsSource: getEnv("COMMENTS_SOURCE", SOURCE_CSV),
		CSVPath:        getEnv("COMMENTS_CSV_PATH", "extracted.csv"),
		CommentColumn:  getEnv("COMMENTS_COLUMN", "Comment"),

		CommentsTable: getEnv("COMMENTS_TABLE", "Comments"),
		AWSEndpoint:   getEnv("AWS_ENDPOINT", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		NormalizeMarkdown: getBool("NORMALIZE_MARKDOWN", false),

		ValkeyAddress:  getEnv("VALKEY_INIT_ADDRESS", ""),
		ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
		ValkeyTLS:      getBool("VALKEY_TLS", false),
		ScoreCacheTTL:  getDuration("SCORE_CACHE_TTL", 24*time.Hour, MIN_SCORE_CACHE_TTL),
	}
}

func (c Config) ScoreCacheEnabled() bool {
	return c.ValkeyAddress != ""
}
