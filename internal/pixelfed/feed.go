package pixelfed

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	apperrors "github.com/orgball2608/pixelfed-scraper/pkg/errors"
	"github.com/orgball2608/pixelfed-scraper/pkg/formatter"
)

var (
	feedPostIDRe = regexp.MustCompile(`/p/[^/]+/(\d+)`)
	hashtagRe    = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
)

type FeedLink struct {
	Rel  string
	Href string
	Type string
}

type FeedMedia struct {
	URL    string
	Type   string
	Medium string
}

// FeedEntry is one Atom entry with the Media RSS elements Pixelfed adds.
type FeedEntry struct {
	ID      string
	Title   string
	Updated string
	Content string
	Links   []FeedLink
	Media   []FeedMedia
}

// ParseFeed decodes an Atom document. Errors wrap ErrMalformed.
func ParseFeed(r io.Reader) ([]FeedEntry, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse atom feed: %w: %v", apperrors.ErrMalformed, err)
	}

	entries := make([]FeedEntry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entry := FeedEntry{
			ID:      strings.TrimSpace(e.ID),
			Title:   e.Title,
			Updated: strings.TrimSpace(e.Updated),
		}
		if e.Content != nil {
			entry.Content = e.Content.Value
		}
		for _, l := range e.Links {
			if l == nil {
				continue
			}
			entry.Links = append(entry.Links, FeedLink{Rel: l.Rel, Href: l.Href, Type: l.Type})
		}
		entry.Media = mediaFromExtensions(e.Extensions)
		entries = append(entries, entry)
	}
	return entries, nil
}

func mediaFromExtensions(exts ext.Extensions) []FeedMedia {
	media, ok := exts["media"]
	if !ok {
		return nil
	}

	var out []FeedMedia
	collect := func(items []ext.Extension) {
		for _, m := range items {
			out = append(out, FeedMedia{
				URL:    m.Attrs["url"],
				Type:   m.Attrs["type"],
				Medium: m.Attrs["medium"],
			})
		}
	}
	collect(media["content"])
	for _, group := range media["group"] {
		collect(group.Children["content"])
	}
	return out
}

// ToPost normalizes the entry. Entries without images still produce a
// post; callers drop them with Post.HasImage.
func (e FeedEntry) ToPost() domain.Post {
	post := domain.Post{
		CreatedAt:  e.Updated,
		Visibility: "public",
		Tags:       []string{},
	}

	if e.ID != "" {
		post.ID = e.ID
		post.URL = e.ID
		if m := feedPostIDRe.FindStringSubmatch(e.ID); m != nil {
			post.ID = m[1]
		}
	}

	for _, l := range e.Links {
		rel := l.Rel
		if rel == "" {
			rel = "alternate"
		}
		if rel == "alternate" && l.Href != "" {
			post.URL = l.Href
		}
	}

	post.Content = e.Content
	if post.Content == "" {
		post.Content = e.Title
	}

	for _, m := range e.Media {
		mediaType := m.Type
		if mediaType == "" {
			mediaType = "image/jpeg"
		}
		medium := m.Medium
		if medium == "" {
			medium = "image"
		}
		if m.URL == "" || (medium != "image" && !strings.HasPrefix(mediaType, "image/")) {
			continue
		}
		post.MediaAttachments = append(post.MediaAttachments, domain.MediaAttachment{
			Type:       domain.MediaTypeImage,
			URL:        m.URL,
			PreviewURL: m.URL,
			Meta:       map[string]any{"type": mediaType},
		})
	}

	for _, l := range e.Links {
		if l.Rel != "enclosure" || l.Href == "" || !strings.HasPrefix(l.Type, "image/") {
			continue
		}
		if hasMediaURL(post.MediaAttachments, l.Href) {
			continue
		}
		post.MediaAttachments = append(post.MediaAttachments, domain.MediaAttachment{
			Type:       domain.MediaTypeImage,
			URL:        l.Href,
			PreviewURL: l.Href,
			Meta:       map[string]any{},
		})
	}

	if post.Content != "" {
		// Scan the decoded text so entities like &#39; are not read as tags.
		for _, m := range hashtagRe.FindAllStringSubmatch(formatter.StripHTML(post.Content), -1) {
			post.Tags = append(post.Tags, m[1])
		}
	}
	return post
}

func hasMediaURL(media []domain.MediaAttachment, url string) bool {
	for _, m := range media {
		if m.URL == url {
			return true
		}
	}
	return false
}
