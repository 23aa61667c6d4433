package providers

import (
	"errors"
	"fmt"
	"strings"
)

// Fallback messages used when an upstream gives no usable message.
const (
	MessageMissingKeys    = "Server Error: Missing Twitch API Keys in server configuration."
	MessageFallback       = "Failed to fetch game data."
	MessageAuthFallback   = "Failed to authenticate with the game catalog."
	MessageEmptyTokenBody = "credential service returned no access token"
)

// ErrEmptyQuery marks a blank search; callers treat it as a no-op.
var ErrEmptyQuery = errors.New("empty search query")

// ConfigurationError reports credentials missing from process configuration.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return MessageMissingKeys
	}
	return fmt.Sprintf("%s (missing %s)", MessageMissingKeys, strings.Join(e.Missing, ", "))
}

// UpstreamAuthError reports a failed credential exchange.
type UpstreamAuthError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamAuthError) Error() string {
	return upstreamErrorString("credential exchange failed", e.StatusCode, e.Message, e.Err)
}

func (e *UpstreamAuthError) Unwrap() error { return e.Err }

// UpstreamQueryError reports a failed or non-success catalog call.
type UpstreamQueryError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamQueryError) Error() string {
	return upstreamErrorString("catalog query failed", e.StatusCode, e.Message, e.Err)
}

func (e *UpstreamQueryError) Unwrap() error { return e.Err }

func upstreamErrorString(prefix string, status int, msg string, err error) string {
	var b strings.Builder
	b.WriteString(prefix)
	if status > 0 {
		fmt.Fprintf(&b, " (status=%d)", status)
	}
	if msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	} else if err != nil {
		b.WriteString(": ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// AsAuthError attempts to unwrap an error into an UpstreamAuthError.
func AsAuthError(err error) (*UpstreamAuthError, bool) {
	var authErr *UpstreamAuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// AsQueryError attempts to unwrap an error into an UpstreamQueryError.
func AsQueryError(err error) (*UpstreamQueryError, bool) {
	var queryErr *UpstreamQueryError
	if errors.As(err, &queryErr) {
		return queryErr, true
	}
	return nil, false
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// PublicMessage picks the human-readable message returned to callers:
// the upstream-provided message when present, otherwise a fixed fallback.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsConfigurationError(err) {
		return MessageMissingKeys
	}
	if authErr, ok := AsAuthError(err); ok {
		if authErr.Message != "" {
			return authErr.Message
		}
		return MessageAuthFallback
	}
	if queryErr, ok := AsQueryError(err); ok && queryErr.Message != "" {
		return queryErr.Message
	}
	return MessageFallback
}
