package domain

// Post is one status of the scraped account, normalized from whichever
// source produced it.
type Post struct {
	ID               string
	URL              string
	Content          string // raw, may carry HTML
	CreatedAt        string // as delivered by the source
	Visibility       string
	MediaAttachments []MediaAttachment
	Tags             []string
	FavouritesCount  int
	ReblogsCount     int
	RepliesCount     int
}

// Media types as reported by Mastodon compatible servers.
const (
	MediaTypeImage   = "image"
	MediaTypeGifv    = "gifv"
	MediaTypeVideo   = "video"
	MediaTypeUnknown = "unknown"
)

type MediaAttachment struct {
	ID          string
	Type        string
	URL         string
	PreviewURL  string
	RemoteURL   string
	Description string
	Blurhash    string
	Meta        map[string]any
}

// IsImage reports whether the attachment is emitted as an image record.
// Sources that do not tag their media are assumed to carry images.
func (m MediaAttachment) IsImage() bool {
	return m.Type == "" || m.Type == MediaTypeImage || m.Type == MediaTypeGifv
}

// HasImage reports whether at least one attachment qualifies.
func (p Post) HasImage() bool {
	for _, m := range p.MediaAttachments {
		if m.IsImage() {
			return true
		}
	}
	return false
}
