package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-12,000", FormatNumber(-12000))
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `pixelfed\.social \- @abusayed\_x`, EscapeMarkdownV2("pixelfed.social - @abusayed_x"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd...", Truncate("abcdefghij", 7))
}

func TestStripHTML(t *testing.T) {
	cases := map[string]string{
		"":                                      "",
		"plain":                                 "plain",
		"<p>Sunset at the <b>lake</b></p>":      "Sunset at the lake",
		"<p>one</p><p>two</p>":                  "one two",
		"Fish &amp; chips &#x1F41F;":            "Fish & chips 🐟",
		"  lots\n\tof   space  ":                "lots of space",
		`<a href="https://x/tags/art">#art</a>`: "#art",
		"line<br/>break":                        "line break",
		"x<y":                                   "x<y",
		"a<b c":                                 "a<b c",
		"tag#a<z":                               "tag#a<z",
		"<p>so close</p> x</y":                  "so close x</y",
		"1 < 2":                                 "1 < 2",
		"AT&T":                                  "AT&T",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripHTML(in), "input %q", in)
	}
}

func TestStripHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"already clean text",
		"Morning walk #nature #photo",
		"<p>Golden <em>hour</em> &amp; friends</p>",
		"  spaced\n out  ",
		"I <3 film",
		"x<y",
		"a<b c",
		"<p>caption</p> then a<b",
	}
	for _, in := range inputs {
		once := StripHTML(in)
		assert.Equal(t, once, StripHTML(once), "input %q", in)
	}
}
