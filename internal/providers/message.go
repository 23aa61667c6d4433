package providers

import (
	"encoding/json"
	"strings"
)

// upstreamMessage covers the error envelopes seen from the credential
// service ({"status":400,"message":"..."}) and the catalog (either the same
// object or an array of {"title","cause"}).
type upstreamMessage struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
	Title   string `json:"title"`
}

func (m upstreamMessage) text() string {
	switch {
	case m.Message != "":
		return m.Message
	case m.Cause != "":
		return m.Cause
	default:
		return m.Title
	}
}

// ExtractMessage returns the upstream-provided error message from a
// response body, or "" when the body carries none.
func ExtractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var single upstreamMessage
	if err := json.Unmarshal([]byte(trimmed), &single); err == nil {
		return strings.TrimSpace(single.text())
	}

	var many []upstreamMessage
	if err := json.Unmarshal([]byte(trimmed), &many); err == nil {
		for _, m := range many {
			if msg := strings.TrimSpace(m.text()); msg != "" {
				return msg
			}
		}
	}
	return ""
}
