package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPGracePeriod(t *testing.T) {
	assert.Equal(t, 5*time.Minute+persistMargin,
		HTTP{RequestTimeout: 5 * time.Minute, ShutdownTimeout: 5 * time.Second}.GracePeriod())
	assert.Equal(t, time.Hour,
		HTTP{RequestTimeout: 5 * time.Minute, ShutdownTimeout: time.Hour}.GracePeriod())
	assert.Equal(t, 5*time.Second,
		HTTP{ShutdownTimeout: 5 * time.Second}.GracePeriod())
}
