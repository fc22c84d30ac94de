// Package render turns structured-document trees and operation results
// into plain terminal text.
package render

import (
	"strings"

	"github.com/seojun/jigit/internal/adf"
)

// PlainText extracts readable text from a structured-document tree
// fetched from the tracker. Marks are discarded and no markdown is
// regenerated. Node types this tool never emits degrade gracefully:
// anything with children contributes its children's text, anything else
// contributes nothing. It never fails.
func PlainText(n *adf.Node) string {
	if n == nil {
		return ""
	}
	if n.Type != "doc" {
		return nodeText(n)
	}

	var b strings.Builder
	for _, block := range n.Content {
		text := nodeText(block)
		switch block.Type {
		case "paragraph", "heading":
			b.WriteString(text)
			b.WriteByte('\n')
		default:
			// Bullet lists already terminate themselves with a newline;
			// everything else passes through unmodified.
			b.WriteString(text)
		}
	}
	return strings.TrimSpace(b.String())
}

func nodeText(n *adf.Node) string {
	switch n.Type {
	case "text":
		return n.Text
	case "bulletList":
		if len(n.Content) == 0 {
			return ""
		}
		lines := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			lines = append(lines, "- "+strings.TrimSpace(nodeText(item)))
		}
		return strings.Join(lines, "\n") + "\n"
	case "listItem":
		return strings.TrimSpace(childText(n))
	case "paragraph", "heading":
		return childText(n)
	default:
		// Generic fallback: unknown kinds with children contribute their
		// children's text, unknown leaves contribute nothing.
		return childText(n)
	}
}

func childText(n *adf.Node) string {
	var b strings.Builder
	for _, c := range n.Content {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
