package news

// Item is one entry of the syndicated news sidebar.
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate,omitempty"`
	Snippet string `json:"snippet"`
}
