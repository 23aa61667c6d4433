package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"object message", `{"message":"malformed query"}`, "malformed query"},
		{"credential service", `{"status":403,"message":"invalid client secret"}`, "invalid client secret"},
		{"catalog array", `[{"title":"Syntax Error","status":400,"cause":"Missing ;"}]`, "Missing ;"},
		{"title only", `[{"title":"Authorization Failure"}]`, "Authorization Failure"},
		{"empty body", ``, ""},
		{"plain text", `upstream exploded`, ""},
		{"no message fields", `{"status":500}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractMessage([]byte(tc.body)))
		})
	}
}
