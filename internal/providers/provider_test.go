package providers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidate(t *testing.T) {
	assert.NoError(t, Credentials{ClientID: "id", ClientSecret: "secret"}.Validate())

	err := Credentials{ClientID: " ", ClientSecret: ""}.Validate()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"client id", "client secret"}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "Missing")
	assert.Contains(t, err.Error(), "Keys")
}

func TestCredentialsNeverFormatSecrets(t *testing.T) {
	creds := Credentials{ClientID: "visible-id", ClientSecret: "hunter2"}

	assert.NotContains(t, fmt.Sprintf("%v %+v %s", creds, creds, creds), "hunter2")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("creds", "creds", creds, "token", AccessToken{Value: "tok-123"})
	assert.NotContains(t, buf.String(), "hunter2")
	assert.NotContains(t, buf.String(), "tok-123")
}

func TestAccessTokenValid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := AccessToken{Value: "t", ObtainedAt: now, ExpiresIn: time.Hour}

	assert.True(t, token.Valid(now.Add(30*time.Minute), time.Minute))
	assert.False(t, token.Valid(now.Add(59*time.Minute+30*time.Second), time.Minute))
	assert.False(t, AccessToken{Value: "t", ObtainedAt: now}.Valid(now, 0), "unknown lifetime is single-use")
	assert.False(t, AccessToken{}.Valid(now, 0))
}

func TestLogUpstreamTagsUpstream(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogUpstream(context.Background(), logger, slog.LevelWarn, "igdb", "skipped entries")

	assert.Contains(t, buf.String(), "upstream=igdb")
	assert.NotPanics(t, func() {
		LogUpstream(context.Background(), nil, slog.LevelInfo, "igdb", "noop")
	})
}
