package pixelfed

import (
	"bytes"
	"encoding/json"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
)

// ID accepts both the string ids Mastodon documents and the bare numbers
// some Pixelfed versions send.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

type Account struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Attachment struct {
	ID          ID             `json:"id"`
	Type        string         `json:"type"`
	URL         string         `json:"url"`
	PreviewURL  string         `json:"preview_url"`
	RemoteURL   string         `json:"remote_url"`
	Description string         `json:"description"`
	Blurhash    string         `json:"blurhash"`
	Meta        map[string]any `json:"meta"`
}

// Status is one item of /api/v1/accounts/{id}/statuses.
type Status struct {
	ID               ID           `json:"id"`
	URI              string       `json:"uri"`
	URL              string       `json:"url"`
	Content          string       `json:"content"`
	CreatedAt        string       `json:"created_at"`
	Visibility       string       `json:"visibility"`
	FavouritesCount  int          `json:"favourites_count"`
	ReblogsCount     int          `json:"reblogs_count"`
	RepliesCount     int          `json:"replies_count"`
	MediaAttachments []Attachment `json:"media_attachments"`
	Tags             []Tag        `json:"tags"`
}

func (s Status) ToPost() domain.Post {
	post := domain.Post{
		ID:              string(s.ID),
		URL:             s.URL,
		Content:         s.Content,
		CreatedAt:       s.CreatedAt,
		Visibility:      s.Visibility,
		FavouritesCount: s.FavouritesCount,
		ReblogsCount:    s.ReblogsCount,
		RepliesCount:    s.RepliesCount,
	}
	if post.URL == "" {
		post.URL = s.URI
	}

	for _, a := range s.MediaAttachments {
		post.MediaAttachments = append(post.MediaAttachments, domain.MediaAttachment{
			ID:          string(a.ID),
			Type:        a.Type,
			URL:         a.URL,
			PreviewURL:  a.PreviewURL,
			RemoteURL:   a.RemoteURL,
			Description: a.Description,
			Blurhash:    a.Blurhash,
			Meta:        a.Meta,
		})
	}
	for _, t := range s.Tags {
		if t.Name != "" {
			post.Tags = append(post.Tags, t.Name)
		}
	}
	return post
}

// Posts normalizes a page of statuses.
func Posts(statuses []Status) []domain.Post {
	posts := make([]domain.Post, 0, len(statuses))
	for _, s := range statuses {
		posts = append(posts, s.ToPost())
	}
	return posts
}
