// Package jigit converts between a constrained markdown subset and the
// structured-document trees used by hosted issue trackers for rich-text
// fields.
//
// The forward direction understands headings levels 1-3, unordered bullet
// lists, fenced code blocks, inline code/bold/links, and plain paragraphs;
// everything else degrades to plain text and conversion never fails. The
// reverse direction flattens any tree the tracker returns into readable
// terminal text, tolerating node types the forward converter never emits.
//
// # Example Usage
//
//	payload, err := jigit.ToADF("# Release notes\n\n- fixed `parser`\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// send payload as the issue description ...
//
//	text, err := jigit.ToText(fetchedDescription)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(text)
package jigit

import (
	"encoding/json"

	"github.com/seojun/jigit/internal/adf"
	"github.com/seojun/jigit/internal/markdown"
	"github.com/seojun/jigit/internal/render"
)

// ToADF converts markdown source into the tracker's rich-text wire
// format: a JSON document shaped {type:"doc", version:1, content:[...]}.
//
// Any input, including the empty string, produces a valid document.
func ToADF(source string) ([]byte, error) {
	return json.Marshal(markdown.ToDoc(source))
}

// ToText flattens a rich-text document, as returned by the tracker, into
// plain text for terminal display. Unknown node types contribute their
// children's text, or nothing when they have none.
func ToText(adfJSON []byte) (string, error) {
	node, err := adf.Unmarshal(adfJSON)
	if err != nil {
		return "", err
	}
	return render.PlainText(node), nil
}
