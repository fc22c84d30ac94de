package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	source := []byte(`---
title: Deploy runbook
space: OPS
labels:
  - runbook
  - deploy
---
# Steps

- check the dashboard
`)

	meta, body, err := ParseFrontMatter(source)
	require.NoError(t, err)
	assert.Equal(t, "Deploy runbook", meta.Title)
	assert.Equal(t, "OPS", meta.Space)
	assert.Equal(t, []string{"runbook", "deploy"}, meta.Labels)
	assert.Equal(t, "# Steps\n\n- check the dashboard\n", body)
}

func TestParseFrontMatterAbsent(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("just a paragraph\n"))
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Equal(t, "just a paragraph\n", body)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Deploy Runbook":        "deploy-runbook",
		"  spaces   galore  ":   "spaces-galore",
		"v1.2 (hotfix!)":        "v1-2-hotfix",
		"already-a-slug":        "already-a-slug",
		"UPPER and 123 numbers": "upper-and-123-numbers",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
