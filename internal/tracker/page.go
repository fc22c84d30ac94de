package tracker

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// Page is the client-side view of a wiki page. Body is raw markdown; the
// wiki stores it under a markdown representation envelope.
type Page struct {
	ID       string
	Title    string
	SpaceKey string
	Version  int
	Body     string
}

type pagePayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Version struct {
		Number int `json:"number"`
	} `json:"version"`
	Body struct {
		Markdown struct {
			Value string `json:"value"`
		} `json:"markdown"`
	} `json:"body"`
}

func (p *pagePayload) toPage() *Page {
	return &Page{
		ID:       p.ID,
		Title:    p.Title,
		SpaceKey: p.Space.Key,
		Version:  p.Version.Number,
		Body:     p.Body.Markdown.Value,
	}
}

func pageBody(markdown string) map[string]any {
	return map[string]any{
		"markdown": map[string]any{
			"value":          markdown,
			"representation": "markdown",
		},
	}
}

// CreatePage creates a wiki page in the given space and returns its ID.
func (c *Client) CreatePage(ctx context.Context, spaceKey, title, markdown string) (string, error) {
	payload := map[string]any{
		"type":  "page",
		"title": title,
		"space": map[string]any{"key": spaceKey},
		"body":  pageBody(markdown),
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, "POST", "/wiki/rest/api/content", nil, payload, &created); err != nil {
		return "", errors.Wrap(err, "create page")
	}
	return created.ID, nil
}

// GetPage fetches one wiki page by ID.
func (c *Client) GetPage(ctx context.Context, id string) (*Page, error) {
	query := url.Values{}
	query.Set("expand", "body.markdown,version,space")

	var payload pagePayload
	if err := c.do(ctx, "GET", "/wiki/rest/api/content/"+url.PathEscape(id), query, nil, &payload); err != nil {
		return nil, errors.Wrapf(err, "get page %s", id)
	}
	return payload.toPage(), nil
}

// UpdatePage replaces a page's body, bumping the version number past the
// current one as the wiki requires.
func (c *Client) UpdatePage(ctx context.Context, id, title, markdown string) error {
	current, err := c.GetPage(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "update page %s", id)
	}
	if title == "" {
		title = current.Title
	}

	payload := map[string]any{
		"type":    "page",
		"title":   title,
		"version": map[string]any{"number": current.Version + 1},
		"body":    pageBody(markdown),
	}
	if err := c.do(ctx, "PUT", "/wiki/rest/api/content/"+url.PathEscape(id), nil, payload, nil); err != nil {
		return errors.Wrapf(err, "update page %s", id)
	}
	return nil
}

// DeletePage deletes a wiki page by ID.
func (c *Client) DeletePage(ctx context.Context, id string) error {
	if err := c.do(ctx, "DELETE", "/wiki/rest/api/content/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "delete page %s", id)
	}
	return nil
}
