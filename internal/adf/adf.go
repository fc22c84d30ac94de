// Package adf models the structured-document tree used by the tracker's
// rich-text fields.
//
// The node family is closed: a document holds headings, paragraphs, bullet
// lists and code blocks, and all inline content is a flat run of text nodes
// carrying zero or more marks. Trees built here are immutable once
// constructed; they are serialized to the tracker's wire schema and then
// discarded. Reading the richer trees the tracker returns goes through the
// generic Node type in node.go instead.
package adf

import "encoding/json"

// Mark types understood by the tracker's rich-text schema.
const (
	MarkStrong = "strong"
	MarkCode   = "code"
	MarkLink   = "link"
)

// BlockNode is the interface for top-level document blocks.
type BlockNode interface {
	wire() *Node
}

// Doc is the root of a structured document.
type Doc struct {
	Content []BlockNode
}

// Heading is a level 1-3 section heading.
type Heading struct {
	Level   int
	Content []Text
}

// Paragraph holds a run of inline text nodes.
type Paragraph struct {
	Content []Text
}

// BulletList holds one or more list items. It is never built with zero
// items by the forward converter.
type BulletList struct {
	Items []*ListItem
}

// ListItem holds exactly one paragraph. Nested lists and multi-block
// items are not modeled.
type ListItem struct {
	Para *Paragraph
}

// CodeBlock holds an opaque text payload. Internal newlines are preserved
// exactly as authored.
type CodeBlock struct {
	Language string
	Code     string
}

// Text is a leaf inline node: a run of characters plus its marks.
type Text struct {
	Text  string
	Marks []Mark
}

// Mark is an inline formatting annotation attached to a text run.
type Mark struct {
	Type string
	Href string // set for link marks only
}

// NewHeading builds a heading with a non-empty inline sequence; the
// tracker rejects empty content arrays, so an empty sequence is replaced
// with a single space text node.
func NewHeading(level int, content []Text) *Heading {
	return &Heading{Level: level, Content: nonEmpty(content)}
}

// NewParagraph builds a paragraph with a non-empty inline sequence,
// substituting a single space text node when content is empty.
func NewParagraph(content []Text) *Paragraph {
	return &Paragraph{Content: nonEmpty(content)}
}

func nonEmpty(content []Text) []Text {
	if len(content) == 0 {
		return []Text{{Text: " "}}
	}
	return content
}

// Plain returns an unmarked text run.
func Plain(s string) Text { return Text{Text: s} }

// Code returns a text run with the inline-code mark.
func Code(s string) Text { return Text{Text: s, Marks: []Mark{{Type: MarkCode}}} }

// Strong returns a text run with the bold mark.
func Strong(s string) Text { return Text{Text: s, Marks: []Mark{{Type: MarkStrong}}} }

// Link returns a text run whose content is the label, marked as a link
// to href.
func Link(label, href string) Text {
	return Text{Text: label, Marks: []Mark{{Type: MarkLink, Href: href}}}
}

// MarshalJSON serializes the document in the tracker's wire schema. The
// root content array is always present, even for a zero-block document;
// the remote rejects documents without one.
func (d *Doc) MarshalJSON() ([]byte, error) {
	w := d.Wire()
	return json.Marshal(struct {
		Type    string  `json:"type"`
		Version int     `json:"version"`
		Content []*Node `json:"content"`
	}{w.Type, w.Version, w.Content})
}
