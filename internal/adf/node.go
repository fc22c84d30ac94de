package adf

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Node is the wire form of a structured-document node. The root carries
// {type, version, content}; every other node carries {type, attrs?,
// content?, text?, marks?}.
//
// Node is also the read-side representation: documents fetched from the
// tracker may contain node types this package never emits (panels, tables,
// media), and they decode into Node unchanged for the extractor to walk.
type Node struct {
	Type    string         `json:"type"`
	Version int            `json:"version,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Marks   []*MarkNode    `json:"marks,omitempty"`
}

// MarkNode is the wire form of an inline mark.
type MarkNode struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Unmarshal decodes a wire document. Unknown node types and extra
// attributes are preserved as-is.
func Unmarshal(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, errors.Wrap(err, "decode structured document")
	}
	return &n, nil
}

// Wire converts the typed document into its wire form. The content array
// is always present, even for a document with zero blocks.
func (d *Doc) Wire() *Node {
	content := make([]*Node, 0, len(d.Content))
	for _, b := range d.Content {
		content = append(content, b.wire())
	}
	return &Node{Type: "doc", Version: 1, Content: content}
}

func (h *Heading) wire() *Node {
	return &Node{
		Type:    "heading",
		Attrs:   map[string]any{"level": h.Level},
		Content: inlineWire(h.Content),
	}
}

func (p *Paragraph) wire() *Node {
	return &Node{Type: "paragraph", Content: inlineWire(p.Content)}
}

func (l *BulletList) wire() *Node {
	content := make([]*Node, 0, len(l.Items))
	for _, item := range l.Items {
		content = append(content, &Node{
			Type:    "listItem",
			Content: []*Node{item.Para.wire()},
		})
	}
	return &Node{Type: "bulletList", Content: content}
}

func (c *CodeBlock) wire() *Node {
	n := &Node{Type: "codeBlock", Attrs: map[string]any{"language": c.Language}}
	if c.Code != "" {
		n.Content = []*Node{{Type: "text", Text: c.Code}}
	}
	return n
}

func (t Text) wireText() *Node {
	n := &Node{Type: "text", Text: t.Text}
	for _, m := range t.Marks {
		mark := &MarkNode{Type: m.Type}
		if m.Type == MarkLink {
			mark.Attrs = map[string]any{"href": m.Href}
		}
		n.Marks = append(n.Marks, mark)
	}
	return n
}

func inlineWire(content []Text) []*Node {
	nodes := make([]*Node, 0, len(content))
	for _, t := range content {
		nodes = append(nodes, t.wireText())
	}
	return nodes
}
