package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryMillis(t *testing.T) {
	assert.Equal(t, int64(86_400_000), expiryMillis(24*time.Hour))
	assert.Equal(t, int64(500), expiryMillis(500*time.Millisecond))
	assert.Equal(t, int64(1), expiryMillis(time.Millisecond))
	assert.Equal(t, int64(1), expiryMillis(200*time.Microsecond))
	assert.Equal(t, int64(1), expiryMillis(0))
}
