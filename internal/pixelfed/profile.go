package pixelfed

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	apperrors "github.com/orgball2608/pixelfed-scraper/pkg/errors"
)

var (
	digitsRe = regexp.MustCompile(`^\d+$`)

	// Tried in order. Avatars live under /cache/avatars/{id}/ or
	// /storage/avatars/{id}/; Pixelfed ids are usually 18+ digits.
	accountIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/(?:cache|storage)/avatars/(\d+)/`),
		regexp.MustCompile(`/avatars/(\d+)/`),
		regexp.MustCompile(`data-account-id=["'](\d+)["']`),
		regexp.MustCompile(`"account_id":\s*"?(\d+)"?`),
		regexp.MustCompile(`"id":\s*"?(\d{15,})"?`),
	}

	storageImageRe = regexp.MustCompile(`(?i)(https?://[^"']+/storage/m/[^"']+\.(?:jpg|jpeg|png|gif|webp))`)
)

// ProfilePage is the public HTML profile of an account.
type ProfilePage struct {
	html string
	doc  *goquery.Document
	// postIDRe matches links to single posts on this instance.
	postIDRe *regexp.Regexp
}

func ParseProfilePage(instance string, body []byte) (*ProfilePage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse profile page: %w: %v", apperrors.ErrMalformed, err)
	}
	return &ProfilePage{
		html:     string(body),
		doc:      doc,
		postIDRe: regexp.MustCompile(regexp.QuoteMeta(instance) + `/p/(\d+)`),
	}, nil
}

// AccountID digs the numeric account id out of the page.
func (p *ProfilePage) AccountID() (string, bool) {
	var id string
	p.doc.Find("[data-account-id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr("data-account-id"); ok && digitsRe.MatchString(v) {
			id = v
			return false
		}
		return true
	})
	if id != "" {
		return id, true
	}

	for _, re := range accountIDPatterns {
		if m := re.FindStringSubmatch(p.html); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ImageURLs returns every distinct media storage URL in first-seen order.
func (p *ProfilePage) ImageURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	for _, u := range storageImageRe.FindAllString(p.html, -1) {
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}

// PostIDs lists the ids of posts linked from the page.
func (p *ProfilePage) PostIDs() []string {
	var ids []string
	for _, m := range p.postIDRe.FindAllStringSubmatch(p.html, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// ToPosts wraps each discovered image in a bare post.
func (p *ProfilePage) ToPosts() []domain.Post {
	urls := p.ImageURLs()
	posts := make([]domain.Post, 0, len(urls))
	for _, u := range urls {
		posts = append(posts, domain.Post{
			Visibility: "public",
			Tags:       []string{},
			MediaAttachments: []domain.MediaAttachment{{
				Type:       domain.MediaTypeImage,
				URL:        u,
				PreviewURL: u,
				Meta:       map[string]any{},
			}},
		})
	}
	return posts
}
