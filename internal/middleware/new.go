package middleware

import (
	"schedcal/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin bounds mutating requests
// per client IP; values below 1 disable the limiter.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
