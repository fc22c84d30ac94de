// Package gitops wraps the local git binary for the batch-update
// workflow: detect working copies, read the checked-out branch, and bring
// a named branch up to date with its remote.
package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Runner executes git with args inside dir and returns the combined
// output, trimmed. Injectable in tests.
type Runner func(ctx context.Context, dir string, args ...string) (string, error)

func defaultRunner(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return text, errors.Wrapf(err, "git %s: %s", strings.Join(args, " "), text)
	}
	return text, nil
}

// Git runs git operations against local working copies.
type Git struct {
	run Runner
}

// New returns a Git backed by the system git binary.
func New() *Git {
	return &Git{run: defaultRunner}
}

// NewWithRunner returns a Git backed by a custom runner.
func NewWithRunner(run Runner) *Git {
	return &Git{run: run}
}

// IsRepo reports whether dir is inside a git working tree.
func (g *Git) IsRepo(ctx context.Context, dir string) bool {
	out, err := g.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// CurrentBranch returns the name of the checked-out branch.
func (g *Git) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := g.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errors.Wrap(err, "resolve current branch")
	}
	return out, nil
}

// Pull runs `git pull <remote> <branch>` in dir.
func (g *Git) Pull(ctx context.Context, dir, remote, branch string) (string, error) {
	return g.run(ctx, dir, "pull", remote, branch)
}

// Fetch updates the local <branch> from <remote> without touching the
// checkout, via `git fetch <remote> <branch>:<branch>`.
func (g *Git) Fetch(ctx context.Context, dir, remote, branch string) (string, error) {
	return g.run(ctx, dir, "fetch", remote, branch+":"+branch)
}

// DiscoverRepos lists the immediate child directories of root that are
// git working copies, sorted by name.
func DiscoverRepos(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", root)
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			repos = append(repos, dir)
		}
	}
	sort.Strings(repos)
	return repos, nil
}
