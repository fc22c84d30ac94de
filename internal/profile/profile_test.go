package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvFillsMissingFields(t *testing.T) {
	t.Setenv("JIGIT_URL", "https://env.example.com")
	t.Setenv("JIGIT_EMAIL", "env@example.com")
	t.Setenv("JIGIT_TOKEN", "env-token")
	t.Setenv("JIGIT_PROJECT", "ENV")

	p := &Profile{Email: "flag@example.com"}
	p.FromEnv()

	assert.Equal(t, "https://env.example.com", p.TrackerURL)
	assert.Equal(t, "flag@example.com", p.Email, "flag value must win over the environment")
	assert.Equal(t, "env-token", p.APIToken)
	assert.Equal(t, "ENV", p.Project)
}

func TestValidateNormalizes(t *testing.T) {
	p := &Profile{TrackerURL: " https://example.atlassian.net/ "}
	require.NoError(t, p.Validate())

	assert.Equal(t, "https://example.atlassian.net", p.TrackerURL)
	assert.Equal(t, 30, p.Timeout)
	assert.Equal(t, "origin", p.Remote)
	assert.Equal(t, "main", p.Branch)
}

func TestValidateRejectsBadURL(t *testing.T) {
	p := &Profile{TrackerURL: "not a url"}
	assert.Error(t, p.Validate())
}

func TestRequireAuth(t *testing.T) {
	p := &Profile{}
	assert.ErrorContains(t, p.RequireAuth(), "tracker URL")

	p.TrackerURL = "https://example.atlassian.net"
	assert.ErrorContains(t, p.RequireAuth(), "email")

	p.Email = "dev@example.com"
	assert.ErrorContains(t, p.RequireAuth(), "token")

	p.APIToken = "t"
	assert.NoError(t, p.RequireAuth())
}
