package extract

import (
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/pkg/formatter"
)

// Images flattens every image-like attachment of posts into a record.
// Posts without such attachments contribute nothing.
func Images(posts []domain.Post) []domain.ImageRecord {
	images := []domain.ImageRecord{}

	for _, post := range posts {
		var content, contentHTML *string
		if post.Content != "" {
			clean := formatter.StripHTML(post.Content)
			content = &clean
			if clean != post.Content {
				raw := post.Content
				contentHTML = &raw
			}
		}
		tags := uniqueTags(post.Tags)

		for _, media := range post.MediaAttachments {
			if !media.IsImage() {
				continue
			}

			meta := media.Meta
			if meta == nil {
				meta = map[string]any{}
			}

			images = append(images, domain.ImageRecord{
				ID:              nullable(media.ID),
				PostID:          nullable(post.ID),
				URL:             media.URL,
				PreviewURL:      nullable(media.PreviewURL),
				RemoteURL:       nullable(media.RemoteURL),
				Description:     nullable(media.Description),
				Blurhash:        nullable(media.Blurhash),
				Meta:            meta,
				PostURL:         nullable(post.URL),
				PostContent:     content,
				PostContentHTML: contentHTML,
				CreatedAt:       nullable(post.CreatedAt),
				Visibility:      nullable(post.Visibility),
				FavouritesCount: post.FavouritesCount,
				ReblogsCount:    post.ReblogsCount,
				RepliesCount:    post.RepliesCount,
				Tags:            tags,
			})
		}
	}

	return images
}

// uniqueTags drops empty and repeated tags, keeping first-seen order.
func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
