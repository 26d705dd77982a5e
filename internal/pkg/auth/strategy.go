package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid auth token")

// DefaultTTL is the lifetime of issued tokens when no TTL is configured.
const DefaultTTL = time.Hour

// Strategy issues and verifies bearer tokens carrying a user identity.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

// Options tunes strategy behaviour.
type Options struct {
	TTL time.Duration
	// Now overrides the clock, used by tests.
	Now func() time.Time
}

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return DefaultTTL
	}
	return o.TTL
}

func (o Options) clock() func() time.Time {
	if o.Now == nil {
		return time.Now
	}
	return o.Now
}
