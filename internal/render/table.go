package render

import (
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/seojun/jigit/internal/gitops"
	"github.com/seojun/jigit/internal/tracker"
)

const summaryWidth = 60

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// IssueTable renders issues as a terminal table.
func IssueTable(w io.Writer, issues []tracker.Issue) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"KEY", "TYPE", "STATUS", "SUMMARY", "UPDATED"})
	for _, issue := range issues {
		t.AppendRow(table.Row{
			issue.Key,
			issue.Type,
			issue.Status,
			truncate(issue.Summary, summaryWidth),
			updatedLabel(issue.Updated),
		})
	}
	t.Render()
}

func updatedLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// UpdateSummary renders the batch-update outcome: one colored status line
// per repository inside a box sized to the widest line.
func UpdateSummary(results []gitops.UpdateResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, statusLine(r))
	}
	return Box("repository update", lines)
}

func statusLine(r gitops.UpdateResult) string {
	label := r.Status.String()
	if r.Branch != "" {
		label += " (" + r.Branch + ")"
	}
	switch r.Status {
	case gitops.StatusPulled, gitops.StatusFetched:
		label = okColor.Sprint(label)
	case gitops.StatusSkipped:
		label = warnColor.Sprint(label)
	case gitops.StatusFailed:
		label = failColor.Sprint(label)
		if r.Err != nil {
			label += ": " + firstLine(r.Err.Error())
		}
	}
	return r.Dir + "  " + label
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Box draws lines inside an ASCII border sized to the widest line. Widths
// are measured in display cells so wide runes keep the border aligned.
func Box(title string, lines []string) string {
	width := runewidth.StringWidth(title)
	for _, line := range lines {
		if w := visibleWidth(line); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", width+2) + "+\n")
	b.WriteString("| " + pad(title, width) + " |\n")
	b.WriteString("+" + strings.Repeat("-", width+2) + "+\n")
	for _, line := range lines {
		b.WriteString("| " + pad(line, width) + " |\n")
	}
	b.WriteString("+" + strings.Repeat("-", width+2) + "+\n")
	return b.String()
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-visibleWidth(s))
}

// visibleWidth ignores ANSI color sequences when measuring a line.
func visibleWidth(s string) int {
	width := 0
	for {
		start := strings.IndexByte(s, '\x1b')
		if start < 0 {
			return width + runewidth.StringWidth(s)
		}
		width += runewidth.StringWidth(s[:start])
		end := strings.IndexByte(s[start:], 'm')
		if end < 0 {
			return width
		}
		s = s[start+end+1:]
	}
}
