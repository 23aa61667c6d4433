package providers

import (
	"log/slog"
	"strings"
	"time"
)

const redacted = "[REDACTED]"

// Credentials is the static client id/secret pair for the credential service.
// It formats and logs as redacted so it cannot leak through %v or slog.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Validate reports a ConfigurationError when either field is blank.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, "client id")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		missing = append(missing, "client secret")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func (c Credentials) String() string { return redacted }

// LogValue implements slog.LogValuer.
func (c Credentials) LogValue() slog.Value { return slog.StringValue(redacted) }

// AccessToken is a short-lived bearer token. Value never leaves the
// process except as an Authorization header.
type AccessToken struct {
	Value      string
	ObtainedAt time.Time
	ExpiresIn  time.Duration
}

// Valid reports whether the token is usable at now with the given margin.
// Tokens without a known lifetime are treated as single-use.
func (t AccessToken) Valid(now time.Time, margin time.Duration) bool {
	if t.Value == "" || t.ExpiresIn <= 0 {
		return false
	}
	return now.Before(t.ObtainedAt.Add(t.ExpiresIn - margin))
}

func (t AccessToken) String() string { return redacted }

// LogValue implements slog.LogValuer.
func (t AccessToken) LogValue() slog.Value { return slog.StringValue(redacted) }
