// Package profile holds the runtime configuration for the CLI.
package profile

import (
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration a command runs with. Flag values are
// filled in first; FromEnv then supplies anything still missing.
type Profile struct {
	// Tracker instance, e.g. https://example.atlassian.net
	TrackerURL string
	Email      string
	APIToken   string

	// Defaults applied when a command does not name them explicitly.
	Project string // issue project key
	Space   string // wiki space key
	Remote  string // git remote for batch updates
	Branch  string // git branch for batch updates

	Timeout     int // request timeout in seconds
	Concurrency int // max parallel repository updates, 0 = unbounded
}

// FromEnv fills empty credential fields from the JIGIT_* environment
// variables.
func (p *Profile) FromEnv() {
	if p.TrackerURL == "" {
		p.TrackerURL = os.Getenv("JIGIT_URL")
	}
	if p.Email == "" {
		p.Email = os.Getenv("JIGIT_EMAIL")
	}
	if p.APIToken == "" {
		p.APIToken = os.Getenv("JIGIT_TOKEN")
	}
	if p.Project == "" {
		p.Project = os.Getenv("JIGIT_PROJECT")
	}
	if p.Space == "" {
		p.Space = os.Getenv("JIGIT_SPACE")
	}
}

// Validate normalizes the profile and checks fields every command needs.
func (p *Profile) Validate() error {
	p.TrackerURL = strings.TrimRight(strings.TrimSpace(p.TrackerURL), "/")
	if p.TrackerURL != "" {
		parsed, err := url.Parse(p.TrackerURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.Errorf("invalid tracker URL %q", p.TrackerURL)
		}
	}
	if p.Timeout <= 0 {
		p.Timeout = 30
	}
	if p.Remote == "" {
		p.Remote = "origin"
	}
	if p.Branch == "" {
		p.Branch = "main"
	}
	return nil
}

// RequireAuth checks the fields the tracker and wiki commands need.
func (p *Profile) RequireAuth() error {
	switch {
	case p.TrackerURL == "":
		return errors.New("tracker URL is not set (flag --url or JIGIT_URL)")
	case p.Email == "":
		return errors.New("account email is not set (flag --email or JIGIT_EMAIL)")
	case p.APIToken == "":
		return errors.New("API token is not set (flag --token or JIGIT_TOKEN)")
	}
	return nil
}
