package render

import (
	"testing"

	"github.com/seojun/jigit/internal/adf"
)

func text(s string) *adf.Node {
	return &adf.Node{Type: "text", Text: s}
}

func para(children ...*adf.Node) *adf.Node {
	return &adf.Node{Type: "paragraph", Content: children}
}

func TestPlainTextDocument(t *testing.T) {
	doc := &adf.Node{Type: "doc", Version: 1, Content: []*adf.Node{
		{Type: "heading", Attrs: map[string]any{"level": 1}, Content: []*adf.Node{text("Release")}},
		para(text("Changes in this build:")),
		{Type: "bulletList", Content: []*adf.Node{
			{Type: "listItem", Content: []*adf.Node{para(text("  faster parser  "))}},
			{Type: "listItem", Content: []*adf.Node{para(text("fewer crashes"))}},
		}},
		para(text("Enjoy.")),
	}}

	got := PlainText(doc)
	want := "Release\nChanges in this build:\n- faster parser\n- fewer crashes\nEnjoy."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPlainTextDiscardsMarks(t *testing.T) {
	doc := &adf.Node{Type: "doc", Content: []*adf.Node{
		para(&adf.Node{
			Type:  "text",
			Text:  "linked",
			Marks: []*adf.MarkNode{{Type: "link", Attrs: map[string]any{"href": "https://x"}}},
		}),
	}}

	if got := PlainText(doc); got != "linked" {
		t.Errorf("expected %q, got %q", "linked", got)
	}
}

func TestPlainTextUnknownNodeWithChildren(t *testing.T) {
	// A panel is never emitted by the converter but may come back from
	// the remote; its children still contribute.
	doc := &adf.Node{Type: "doc", Content: []*adf.Node{
		{Type: "panel", Attrs: map[string]any{"panelType": "info"}, Content: []*adf.Node{
			para(text("heads up")),
		}},
	}}

	if got := PlainText(doc); got != "heads up" {
		t.Errorf("expected %q, got %q", "heads up", got)
	}
}

func TestPlainTextUnknownLeaf(t *testing.T) {
	doc := &adf.Node{Type: "doc", Content: []*adf.Node{
		{Type: "rule"},
		para(text("after")),
	}}

	if got := PlainText(doc); got != "after" {
		t.Errorf("unknown leaf must contribute nothing, got %q", got)
	}

	if got := PlainText(&adf.Node{Type: "mediaSingle"}); got != "" {
		t.Errorf("expected empty string for bare unknown node, got %q", got)
	}
}

func TestPlainTextCodeBlockPassthrough(t *testing.T) {
	doc := &adf.Node{Type: "doc", Content: []*adf.Node{
		{Type: "codeBlock", Attrs: map[string]any{"language": "go"}, Content: []*adf.Node{
			text("a := 1\nb := 2"),
		}},
	}}

	if got := PlainText(doc); got != "a := 1\nb := 2" {
		t.Errorf("expected literal payload, got %q", got)
	}
}

func TestPlainTextNil(t *testing.T) {
	if got := PlainText(nil); got != "" {
		t.Errorf("expected empty string for nil node, got %q", got)
	}
}

func TestPlainTextEmptyDocument(t *testing.T) {
	if got := PlainText(&adf.Node{Type: "doc", Version: 1}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
