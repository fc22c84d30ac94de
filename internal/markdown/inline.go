package markdown

import (
	"strings"

	"github.com/seojun/jigit/internal/adf"
)

// parseInline scans a line's remainder left to right, with no
// backtracking, and returns a non-empty sequence of text runs. At each
// position the candidates are tried in fixed priority order: inline code,
// bold, link, plain run. A trigger character that completes no pattern is
// consumed as a single unmarked run. There is no escaping and no nesting:
// a bold run cannot contain a link, and `**` inside a code span is just
// payload.
func parseInline(s string) []adf.Text {
	var runs []adf.Text

	i := 0
	for i < len(s) {
		if s[i] == '`' {
			if end := strings.IndexByte(s[i+1:], '`'); end > 0 {
				runs = append(runs, adf.Code(s[i+1:i+1+end]))
				i += end + 2
				continue
			}
		}

		if strings.HasPrefix(s[i:], "**") {
			j := i + 2
			for j < len(s) && s[j] != '*' {
				j++
			}
			if j > i+2 && strings.HasPrefix(s[j:], "**") {
				runs = append(runs, adf.Strong(s[i+2:j]))
				i = j + 2
				continue
			}
		}

		if s[i] == '[' {
			if label, href, size, ok := linkAt(s[i:]); ok {
				runs = append(runs, adf.Link(label, href))
				i += size
				continue
			}
		}

		if j := strings.IndexAny(s[i:], "`*["); j != 0 {
			if j < 0 {
				j = len(s) - i
			}
			runs = append(runs, adf.Plain(s[i:i+j]))
			i += j
			continue
		}

		// Lone trigger character.
		runs = append(runs, adf.Plain(s[i:i+1]))
		i++
	}

	if len(runs) == 0 {
		runs = []adf.Text{{Text: " "}}
	}
	return runs
}

// linkAt matches [label](href) at the start of s. Label and href must be
// non-empty; the label ends at the first ']' and the href at the first ')'.
func linkAt(s string) (label, href string, size int, ok bool) {
	end := strings.IndexByte(s, ']')
	if end < 2 {
		return "", "", 0, false
	}
	if end+1 >= len(s) || s[end+1] != '(' {
		return "", "", 0, false
	}
	closing := strings.IndexByte(s[end+2:], ')')
	if closing <= 0 {
		return "", "", 0, false
	}
	return s[1:end], s[end+2 : end+2+closing], end + closing + 3, true
}
