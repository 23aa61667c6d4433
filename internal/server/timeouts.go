package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	// writeSlack is added on top of two sequential upstream calls per search.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return 30 * time.Second
	}
	return 2*upstream + writeSlack
}
