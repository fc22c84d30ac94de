package gitops

import "context"

// Status classifies the outcome of one repository update.
type Status int

const (
	StatusPulled Status = iota
	StatusFetched
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPulled:
		return "pulled"
	case StatusFetched:
		return "fetched"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UpdateResult is the per-repository outcome of a batch update.
type UpdateResult struct {
	Dir    string
	Branch string // checked-out branch at update time, when known
	Status Status
	Output string
	Err    error
}

// Update brings dir's <branch> up to date with <remote>. When the working
// copy has <branch> checked out it pulls; otherwise it fetches into the
// matching local branch so the checkout is left alone. Non-repositories
// are skipped, and any git failure is captured in the result rather than
// returned.
func (g *Git) Update(ctx context.Context, dir, remote, branch string) UpdateResult {
	result := UpdateResult{Dir: dir}

	if !g.IsRepo(ctx, dir) {
		result.Status = StatusSkipped
		result.Output = "not a git repository"
		return result
	}

	current, err := g.CurrentBranch(ctx, dir)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	result.Branch = current

	var out string
	if current == branch {
		out, err = g.Pull(ctx, dir, remote, branch)
	} else {
		out, err = g.Fetch(ctx, dir, remote, branch)
	}
	result.Output = out
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	if current == branch {
		result.Status = StatusPulled
	} else {
		result.Status = StatusFetched
	}
	return result
}
