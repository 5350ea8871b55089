package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "LOG_LEVEL", "COMMENTS_SOURCE", "COMMENTS_CSV_PATH",
		"COMMENTS_COLUMN", "COMMENTS_TABLE", "AWS_REGION", "NORMALIZE_MARKDOWN",
		"VALKEY_INIT_ADDRESS", "VALKEY_TLS", "SCORE_CACHE_TTL",
	} {
		unsetEnv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SOURCE_CSV, cfg.CommentsSource)
	assert.Equal(t, "extracted.csv", cfg.CSVPath)
	assert.Equal(t, "Comment", cfg.CommentColumn)
	assert.Equal(t, "Comments", cfg.CommentsTable)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.False(t, cfg.NormalizeMarkdown)
	assert.False(t, cfg.ValkeyTLS)
	assert.False(t, cfg.ScoreCacheEnabled())
	assert.Equal(t, 24*time.Hour, cfg.ScoreCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COMMENTS_SOURCE", SOURCE_DYNAMO)
	t.Setenv("COMMENTS_CSV_PATH", "/data/comments.csv")
	t.Setenv("COMMENTS_COLUMN", "Body")
	t.Setenv("NORMALIZE_MARKDOWN", "true")
	t.Setenv("VALKEY_INIT_ADDRESS", "localhost:6379")
	t.Setenv("VALKEY_TLS", "1")
	t.Setenv("SCORE_CACHE_TTL", "90m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SOURCE_DYNAMO, cfg.CommentsSource)
	assert.Equal(t, "/data/comments.csv", cfg.CSVPath)
	assert.Equal(t, "Body", cfg.CommentColumn)
	assert.True(t, cfg.NormalizeMarkdown)
	assert.True(t, cfg.ValkeyTLS)
	assert.True(t, cfg.ScoreCacheEnabled())
	assert.Equal(t, 90*time.Minute, cfg.ScoreCacheTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("NORMALIZE_MARKDOWN", "sometimes")
	t.Setenv("SCORE_CACHE_TTL", "-5s")

	cfg := Load()

	assert.False(t, cfg.NormalizeMarkdown)
	assert.Equal(t, 24*time.Hour, cfg.ScoreCacheTTL)
}

func TestLoad_ScoreCacheTTLBelowOneSecond(t *testing.T) {
	t.Setenv("SCORE_CACHE_TTL", "500ms")
	assert.Equal(t, 500*time.Millisecond, Load().ScoreCacheTTL)

	t.Setenv("SCORE_CACHE_TTL", "500us")
	assert.Equal(t, 24*time.Hour, Load().ScoreCacheTTL)

	t.Setenv("SCORE_CACHE_TTL", "0s")
	assert.Equal(t, 24*time.Hour, Load().ScoreCacheTTL)
}
