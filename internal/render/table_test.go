package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/seojun/jigit/internal/gitops"
	"github.com/seojun/jigit/internal/tracker"
)

func checkAllLinesEqualWidth(t *testing.T, rendered string) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d: width %d, expected %d: %q", i, w, width, line)
		}
	}
}

func TestBoxEqualWidth(t *testing.T) {
	result := Box("update", []string{"repo-a  pulled", "레포-b  fetched", "c"})
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestBoxContainsLines(t *testing.T) {
	result := Box("title", []string{"alpha", "beta"})

	for _, want := range []string{"title", "alpha", "beta"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected box to contain %q:\n%s", want, result)
		}
	}
}

func TestUpdateSummaryStatuses(t *testing.T) {
	results := []gitops.UpdateResult{
		{Dir: "a", Branch: "main", Status: gitops.StatusPulled},
		{Dir: "b", Branch: "feature", Status: gitops.StatusFetched},
		{Dir: "c", Status: gitops.StatusSkipped, Output: "not a git repository"},
		{Dir: "d", Branch: "main", Status: gitops.StatusFailed, Err: errors.New("remote hung up")},
	}

	summary := UpdateSummary(results)
	t.Logf("\n%s", summary)

	for _, want := range []string{"pulled", "fetched", "skipped", "failed", "remote hung up"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q", want)
		}
	}
}

func TestIssueTable(t *testing.T) {
	var buf bytes.Buffer
	IssueTable(&buf, []tracker.Issue{
		{Key: "PROJ-1", Type: "Bug", Status: "Open", Summary: "parser breaks on tabs", Updated: time.Now().Add(-2 * time.Hour)},
		{Key: "PROJ-2", Type: "Task", Status: "Done", Summary: "release 1.4"},
	})
	out := buf.String()
	t.Logf("\n%s", out)

	for _, want := range []string{"PROJ-1", "PROJ-2", "parser breaks on tabs", "KEY"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q", want)
		}
	}
}

func TestTruncateWideRunes(t *testing.T) {
	long := strings.Repeat("가", 50)
	got := truncate(long, 20)
	if runewidth.StringWidth(got) > 20 {
		t.Errorf("truncated string is %d cells wide, expected <= 20", runewidth.StringWidth(got))
	}
}
