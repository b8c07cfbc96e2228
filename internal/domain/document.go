package domain

// DocumentVersion is bumped whenever the output layout changes.
const DocumentVersion = "2.0.0"

// MethodNone labels a run where no strategy produced posts.
const MethodNone = "none"

type Metadata struct {
	Instance    string  `json:"instance"`
	Username    string  `json:"username"`
	AccountID   *string `json:"account_id"`
	ProfileURL  string  `json:"profile_url"`
	TotalPosts  int     `json:"total_posts"`
	TotalImages int     `json:"total_images"`
	ScrapedAt   string  `json:"scraped_at"`
	Method      string  `json:"method"`
	Version     string  `json:"version"`
}

// Document is the whole output file.
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Images   []ImageRecord `json:"images"`
}
