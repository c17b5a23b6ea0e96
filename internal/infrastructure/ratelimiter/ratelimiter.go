package ratelimiter

import "time"

// Limiter decides whether a client identified by key may proceed. When it
// may not, the second return value says how long until it may.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}
