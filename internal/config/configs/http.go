package configs

import "time"

// persistMargin covers the work a request still does after its deadline,
// such as recording a cancelled send.
const persistMargin = 10 * time.Second

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequestTimeout bounds the handling of one request. Campaign sends
	// run inside it, so it must cover the slowest expected send.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5m"`
	// ShutdownTimeout is the minimum time graceful shutdown waits for
	// in-flight requests. See GracePeriod.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// GracePeriod is how long shutdown waits before closing the database pool
// and the event publisher. It is never shorter than a full request plus
// persistMargin, so a send in progress can still record its outcome.
func (h HTTP) GracePeriod() time.Duration {
	if h.RequestTimeout <= 0 {
		return h.ShutdownTimeout
	}
	return max(h.ShutdownTimeout, h.RequestTimeout+persistMargin)
}
