package igdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryProjectionAndLimit(t *testing.T) {
	got := BuildQuery("Cyberpunk 2077")

	want := `search "Cyberpunk 2077"; fields name, cover.url, first_release_date, summary, ` +
		`similar_games.name, similar_games.cover.url, videos.video_id, videos.name; limit 12;`
	assert.Equal(t, want, got)
}

func TestBuildQueryIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, BuildQuery(`Half-Life "2"`), BuildQuery(`Half-Life "2"`))
	}
}

func TestBuildQueryEscapesQuotesAndBackslashes(t *testing.T) {
	got := BuildQuery(`Mario"; fields *; limit 500; \`)

	assert.True(t, strings.HasPrefix(got, `search "Mario\"; fields *; limit 500; \\"; fields name`), got)
	assert.True(t, strings.HasSuffix(got, "limit 12;"))
	assert.Equal(t, 1, strings.Count(got, "limit 12;"))
}

func TestBuildQueryNeutralizesControlCharacters(t *testing.T) {
	got := BuildQuery("Zelda\n\tBreath")
	assert.Contains(t, got, `search "Zelda  Breath";`)
}

func TestBuildQueryTrimsWhitespace(t *testing.T) {
	assert.Equal(t, BuildQuery("Hades"), BuildQuery("  Hades  "))
}
