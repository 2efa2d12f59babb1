package middleware

import (
	"net/http"
	"time"
)

// Timeout bounds the whole request, including datastore calls, through
// context propagation into pgx.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	message := `{"message":"Request timed out"}`

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, message)
	}
}
