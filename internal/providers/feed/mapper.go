package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/gamenexus/gamenexus/internal/domain/news"
)

func mapItems(items []*gofeed.Item) []news.Item {
	out := make([]news.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		out = append(out, news.Item{
			Title:   title,
			Link:    link,
			PubDate: pubDate(it),
			Snippet: plainText(snippetSource(it), maxSnippetRunes),
		})
	}
	return out
}

func pubDate(it *gofeed.Item) string {
	if it.PublishedParsed != nil {
		return it.PublishedParsed.UTC().Format(time.RFC3339)
	}
	if it.UpdatedParsed != nil {
		return it.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	return strings.TrimSpace(it.Published)
}

func snippetSource(it *gofeed.Item) string {
	if strings.TrimSpace(it.Description) != "" {
		return it.Description
	}
	return it.Content
}
