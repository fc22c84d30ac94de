package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
)

// FrontMatter is the metadata block accepted at the top of an issue or
// page markdown file.
type FrontMatter struct {
	Title  string   `yaml:"title"`
	Space  string   `yaml:"space"`
	Slug   string   `yaml:"slug"`
	Labels []string `yaml:"labels"`
}

// ParseFrontMatter splits a markdown file into its metadata and body.
// Files without a frontmatter block return zero metadata and the source
// unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, string, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, "", errors.Wrap(err, "parse frontmatter")
	}
	return meta, string(body), nil
}

// Slugify derives a filesystem- and URL-safe name from a title: lowered,
// non-alphanumeric runs collapsed to single dashes, outer dashes trimmed.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
