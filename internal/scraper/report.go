package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/pkg/formatter"
)

const maxErrorLen = 300

// FormatReport renders a run as a Telegram MarkdownV2 message. previous,
// when known, adds the change in image count.
func FormatReport(run domain.Run, previous *domain.Run) string {
	var sb strings.Builder

	if run.Failed() {
		sb.WriteString("❌ *Pixelfed scrape failed*\n\n")
	} else {
		sb.WriteString("📸 *Pixelfed scrape finished*\n\n")
	}

	fmt.Fprintf(&sb, "👤 @%s on %s\n",
		formatter.EscapeMarkdownV2(run.Username),
		formatter.EscapeMarkdownV2(strings.TrimPrefix(strings.TrimPrefix(run.Instance, "https://"), "http://")),
	)
	// Method labels are [a-z_] only, which code spans take verbatim.
	fmt.Fprintf(&sb, "🔎 Method: `%s`\n", run.Method)
	fmt.Fprintf(&sb, "📝 Posts: %s\n", formatter.EscapeMarkdownV2(formatter.FormatNumber(run.TotalPosts)))

	images := formatter.FormatNumber(run.TotalImages)
	if previous != nil {
		switch delta := run.TotalImages - previous.TotalImages; {
		case delta > 0:
			images += fmt.Sprintf(" (+%s)", formatter.FormatNumber(delta))
		case delta < 0:
			images += fmt.Sprintf(" (%s)", formatter.FormatNumber(delta))
		}
	}
	fmt.Fprintf(&sb, "🖼️ Images: %s\n", formatter.EscapeMarkdownV2(images))
	fmt.Fprintf(&sb, "⏱️ Duration: %s", formatter.EscapeMarkdownV2(run.Duration.Round(100*time.Millisecond).String()))

	if run.Failed() {
		fmt.Fprintf(&sb, "\n\n%s", formatter.EscapeMarkdownV2(formatter.Truncate(run.Error, maxErrorLen)))
	}
	return sb.String()
}

// FormatHistory renders recent runs, newest first, one line each.
func FormatHistory(runs []*domain.Run) string {
	if len(runs) == 0 {
		return "No scrape has been recorded yet\\."
	}

	var sb strings.Builder
	sb.WriteString("🗂️ *Recent scrapes*\n")
	for _, r := range runs {
		status := "✅"
		if r.Failed() {
			status = "❌"
		}
		fmt.Fprintf(&sb, "\n%s %s `%s` %s images",
			status,
			formatter.EscapeMarkdownV2(r.StartedAt.UTC().Format("2006-01-02 15:04")),
			r.Method,
			formatter.EscapeMarkdownV2(formatter.FormatNumber(r.TotalImages)),
		)
	}
	return sb.String()
}
