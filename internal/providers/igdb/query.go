package igdb

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gamenexus/gamenexus/internal/domain/games"
)

// projection is the fixed field list requested for every search. One level
// of similar_games is expanded; deeper relations are never requested.
var projection = []string{
	"name",
	"cover.url",
	"first_release_date",
	"summary",
	"similar_games.name",
	"similar_games.cover.url",
	"videos.video_id",
	"videos.name",
}

// BuildQuery renders the catalog query for a raw search term. The term is
// escaped so embedded quotes or backslashes cannot terminate the string
// literal. Same input always yields the same output.
func BuildQuery(term string) string {
	var b strings.Builder
	b.WriteString(`search "`)
	b.WriteString(escapeTerm(term))
	b.WriteString(`"; fields `)
	b.WriteString(strings.Join(projection, ", "))
	b.WriteString("; limit ")
	b.WriteString(strconv.Itoa(games.MaxResults))
	b.WriteString(";")
	return b.String()
}

func escapeTerm(term string) string {
	term = strings.TrimSpace(term)
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case unicode.IsControl(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
