package tracker

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/seojun/jigit/internal/adf"
)

// issueTimeFormat is the timestamp layout used by the tracker API.
const issueTimeFormat = "2006-01-02T15:04:05.000-0700"

// Issue is the client-side view of a tracker issue. Description is the
// raw structured-document tree as returned by the remote; it may contain
// node types the converter never emits.
type Issue struct {
	Key         string
	Summary     string
	Type        string
	Status      string
	Assignee    string
	Reporter    string
	Labels      []string
	Updated     time.Time
	Description *adf.Node
}

// IssueInput carries the fields for creating an issue.
type IssueInput struct {
	Project     string
	Type        string
	Summary     string
	Labels      []string
	Description *adf.Doc
}

type issueFields struct {
	Summary   string     `json:"summary"`
	Labels    []string   `json:"labels,omitempty"`
	Updated   string     `json:"updated,omitempty"`
	Status    *namedRef  `json:"status,omitempty"`
	IssueType *namedRef  `json:"issuetype,omitempty"`
	Project   *keyRef    `json:"project,omitempty"`
	Assignee  *personRef `json:"assignee,omitempty"`
	Reporter  *personRef `json:"reporter,omitempty"`
	// Description stays a raw node on reads and a typed doc on writes.
	Description *adf.Node `json:"description,omitempty"`
}

type namedRef struct {
	Name string `json:"name"`
}

type keyRef struct {
	Key string `json:"key"`
}

type personRef struct {
	DisplayName string `json:"displayName"`
}

type issuePayload struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

// CreateIssue creates an issue and returns its key.
func (c *Client) CreateIssue(ctx context.Context, in IssueInput) (string, error) {
	fields := map[string]any{
		"project":   keyRef{Key: in.Project},
		"issuetype": namedRef{Name: in.Type},
		"summary":   in.Summary,
	}
	if len(in.Labels) > 0 {
		fields["labels"] = in.Labels
	}
	if in.Description != nil {
		fields["description"] = in.Description
	}

	var created struct {
		Key string `json:"key"`
	}
	err := c.do(ctx, "POST", "/rest/api/3/issue", nil, map[string]any{"fields": fields}, &created)
	if err != nil {
		return "", errors.Wrap(err, "create issue")
	}
	return created.Key, nil
}

// GetIssue fetches one issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	var payload issuePayload
	if err := c.do(ctx, "GET", "/rest/api/3/issue/"+url.PathEscape(key), nil, nil, &payload); err != nil {
		return nil, errors.Wrapf(err, "get issue %s", key)
	}
	return payload.toIssue(), nil
}

// UpdateIssue replaces the description (and, when non-empty, the summary)
// of an existing issue.
func (c *Client) UpdateIssue(ctx context.Context, key, summary string, description *adf.Doc) error {
	fields := map[string]any{}
	if summary != "" {
		fields["summary"] = summary
	}
	if description != nil {
		fields["description"] = description
	}
	if len(fields) == 0 {
		return nil
	}
	path := "/rest/api/3/issue/" + url.PathEscape(key)
	if err := c.do(ctx, "PUT", path, nil, map[string]any{"fields": fields}, nil); err != nil {
		return errors.Wrapf(err, "update issue %s", key)
	}
	return nil
}

// DeleteIssue deletes an issue by key.
func (c *Client) DeleteIssue(ctx context.Context, key string) error {
	if err := c.do(ctx, "DELETE", "/rest/api/3/issue/"+url.PathEscape(key), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "delete issue %s", key)
	}
	return nil
}

// AddComment appends a comment, given as a structured document, to an
// issue.
func (c *Client) AddComment(ctx context.Context, key string, body *adf.Doc) error {
	path := fmt.Sprintf("/rest/api/3/issue/%s/comment", url.PathEscape(key))
	if err := c.do(ctx, "POST", path, nil, map[string]any{"body": body}, nil); err != nil {
		return errors.Wrapf(err, "comment on issue %s", key)
	}
	return nil
}

// SearchIssues runs a JQL query and returns all matching issues, paging
// through the result set.
func (c *Client) SearchIssues(ctx context.Context, jql string) ([]Issue, error) {
	const pageSize = 50

	var issues []Issue
	for start := 0; ; {
		query := url.Values{}
		query.Set("jql", jql)
		query.Set("startAt", strconv.Itoa(start))
		query.Set("maxResults", strconv.Itoa(pageSize))

		var page struct {
			Issues []issuePayload `json:"issues"`
			Total  int            `json:"total"`
		}
		if err := c.do(ctx, "GET", "/rest/api/3/search", query, nil, &page); err != nil {
			return nil, errors.Wrap(err, "search issues")
		}
		for _, p := range page.Issues {
			issues = append(issues, *p.toIssue())
		}

		start += len(page.Issues)
		if start >= page.Total || len(page.Issues) == 0 {
			break
		}
	}
	return issues, nil
}

func (p *issuePayload) toIssue() *Issue {
	issue := &Issue{
		Key:         p.Key,
		Summary:     p.Fields.Summary,
		Labels:      p.Fields.Labels,
		Description: p.Fields.Description,
	}
	if p.Fields.IssueType != nil {
		issue.Type = p.Fields.IssueType.Name
	}
	if p.Fields.Status != nil {
		issue.Status = p.Fields.Status.Name
	}
	if p.Fields.Assignee != nil {
		issue.Assignee = p.Fields.Assignee.DisplayName
	}
	if p.Fields.Reporter != nil {
		issue.Reporter = p.Fields.Reporter.DisplayName
	}
	if p.Fields.Updated != "" {
		if t, err := time.Parse(issueTimeFormat, p.Fields.Updated); err == nil {
			issue.Updated = t
		}
	}
	return issue
}
