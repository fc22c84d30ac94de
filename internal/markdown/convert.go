// Package markdown converts a constrained markdown subset into the
// structured-document tree the tracker accepts for rich-text fields.
//
// The recognized grammar is deliberately small: headings levels 1-3,
// unordered bullet lists, fenced code blocks, inline code/bold/links, and
// plain paragraphs. Anything else falls through to a plain paragraph or
// plain text run; conversion never fails.
package markdown

import (
	"strings"

	"github.com/seojun/jigit/internal/adf"
)

// ToDoc converts markdown source into a structured document.
//
// Lines are classified one at a time in priority order: fence toggle,
// fenced payload, blank line, heading, bullet item, paragraph. Consecutive
// bullet lines accumulate into a single pending list which is flushed by
// any terminating event (blank line, fence open, heading, paragraph, end
// of input). The empty string yields a document with zero blocks.
func ToDoc(source string) *adf.Doc {
	var blocks []adf.BlockNode
	var pending []*adf.ListItem

	inFence := false
	fenceLang := ""
	var fenceLines []string

	flushList := func() {
		if pending != nil {
			blocks = append(blocks, &adf.BulletList{Items: pending})
			pending = nil
		}
	}
	closeFence := func() {
		blocks = append(blocks, &adf.CodeBlock{
			Language: fenceLang,
			Code:     strings.Join(fenceLines, "\n"),
		})
		inFence = false
		fenceLang = ""
		fenceLines = nil
	}

	for _, line := range strings.Split(source, "\n") {
		if inFence {
			if strings.HasPrefix(line, "```") {
				closeFence()
				continue
			}
			// Inside a fence every line is opaque payload.
			fenceLines = append(fenceLines, line)
			continue
		}

		if strings.HasPrefix(line, "```") {
			flushList()
			inFence = true
			fenceLang = line[3:]
			if fenceLang == "" {
				fenceLang = "text"
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			// A blank line only terminates a pending list; it does not
			// emit a blank paragraph of its own.
			flushList()
			continue
		}

		if level, rest, ok := headingLine(line); ok {
			flushList()
			// The heading remainder is carried as one unmarked text run,
			// never inline-parsed.
			blocks = append(blocks, adf.NewHeading(level, literalText(rest)))
			continue
		}

		if rest, ok := bulletLine(line); ok {
			pending = append(pending, &adf.ListItem{
				Para: adf.NewParagraph(parseInline(rest)),
			})
			continue
		}

		flushList()
		blocks = append(blocks, adf.NewParagraph(parseInline(line)))
	}

	// An unclosed fence at end of input still becomes a code block;
	// dropping authored text would be worse than tolerating the typo.
	if inFence {
		closeFence()
	}
	flushList()

	return &adf.Doc{Content: blocks}
}

func headingLine(line string) (level int, rest string, ok bool) {
	for level = 1; level <= 3; level++ {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			return level, line[len(prefix):], true
		}
	}
	return 0, "", false
}

func bulletLine(line string) (rest string, ok bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return line[2:], true
	}
	return "", false
}

func literalText(s string) []adf.Text {
	if s == "" {
		return nil // builder substitutes the placeholder run
	}
	return []adf.Text{adf.Plain(s)}
}
