package middleware

import (
	"golang.org/x/time/rate"

	"storefront-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New builds the middleware set. perSecond and burst shape the shared query
// rate limiter; non-positive values disable limiting.
func New(l log.Logger, perSecond float64, burst int) Middleware {
	var limiter *rate.Limiter
	if perSecond > 0 && burst > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
