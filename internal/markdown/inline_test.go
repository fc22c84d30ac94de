package markdown

import (
	"testing"

	"github.com/seojun/jigit/internal/adf"
)

func markOf(t adf.Text) string {
	if len(t.Marks) == 0 {
		return ""
	}
	return t.Marks[0].Type
}

func TestInlineCode(t *testing.T) {
	runs := parseInline("run `go test` now")

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "run " || markOf(runs[0]) != "" {
		t.Errorf("unexpected first run %+v", runs[0])
	}
	if runs[1].Text != "go test" || markOf(runs[1]) != adf.MarkCode {
		t.Errorf("unexpected code run %+v", runs[1])
	}
	if runs[2].Text != " now" {
		t.Errorf("unexpected last run %+v", runs[2])
	}
}

func TestInlineBold(t *testing.T) {
	runs := parseInline("**important**")

	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "important" || markOf(runs[0]) != adf.MarkStrong {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestInlineLink(t *testing.T) {
	runs := parseInline("see [the docs](https://example.com/docs) first")

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
	link := runs[1]
	if link.Text != "the docs" || markOf(link) != adf.MarkLink {
		t.Errorf("unexpected link run %+v", link)
	}
	if link.Marks[0].Href != "https://example.com/docs" {
		t.Errorf("unexpected href %q", link.Marks[0].Href)
	}
}

func TestInlineMarkExclusivity(t *testing.T) {
	runs := parseInline("`code` and **bold**")

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "code" || markOf(runs[0]) != adf.MarkCode {
		t.Errorf("expected code run first, got %+v", runs[0])
	}
	if runs[1].Text != " and " || markOf(runs[1]) != "" {
		t.Errorf("expected plain connective, got %+v", runs[1])
	}
	if runs[2].Text != "bold" || markOf(runs[2]) != adf.MarkStrong {
		t.Errorf("expected bold run last, got %+v", runs[2])
	}
}

func TestLoneTriggerCharacters(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"a*b", []string{"a", "*", "b"}},
		{"`x", []string{"`", "x"}},
		{"``", []string{"`", "`"}},
		{"****", []string{"*", "*", "*", "*"}},
		{"[label](", []string{"[", "label]("}},
		{"[](x)", []string{"[", "](x)"}},
	}
	for _, tc := range cases {
		runs := parseInline(tc.input)
		if len(runs) != len(tc.want) {
			t.Errorf("%q: expected %d runs, got %d: %+v", tc.input, len(tc.want), len(runs), runs)
			continue
		}
		for i, want := range tc.want {
			if runs[i].Text != want || markOf(runs[i]) != "" {
				t.Errorf("%q run %d: expected plain %q, got %+v", tc.input, i, want, runs[i])
			}
		}
	}
}

func TestNoNestedMarks(t *testing.T) {
	// A bold run cannot contain a link; the bracket stays literal payload.
	runs := parseInline("**see [docs](u)**")

	if markOf(runs[0]) != adf.MarkStrong {
		t.Fatalf("expected bold run first, got %+v", runs[0])
	}
	if runs[0].Text != "see [docs](u)" {
		t.Errorf("bold payload should keep the link syntax literally, got %q", runs[0].Text)
	}
}

func TestEmptyLinePlaceholder(t *testing.T) {
	runs := parseInline("")

	if len(runs) != 1 || runs[0].Text != " " || len(runs[0].Marks) != 0 {
		t.Errorf("expected single-space placeholder, got %+v", runs)
	}
}
