package domain

// ImageRecord is a media attachment flattened together with its post.
// Pointer fields serialize as null when the source had no value.
type ImageRecord struct {
	ID              *string        `json:"id"`
	PostID          *string        `json:"post_id"`
	URL             string         `json:"url"`
	PreviewURL      *string        `json:"preview_url"`
	RemoteURL       *string        `json:"remote_url"`
	Description     *string        `json:"description"`
	Blurhash        *string        `json:"blurhash"`
	Meta            map[string]any `json:"meta"`
	PostURL         *string        `json:"post_url"`
	PostContent     *string        `json:"post_content"`
	PostContentHTML *string        `json:"post_content_html"`
	CreatedAt       *string        `json:"created_at"`
	Visibility      *string        `json:"visibility"`
	FavouritesCount int            `json:"favourites_count"`
	ReblogsCount    int            `json:"reblogs_count"`
	RepliesCount    int            `json:"replies_count"`
	Tags            []string       `json:"tags"`
}
