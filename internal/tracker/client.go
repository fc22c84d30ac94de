// Package tracker is the REST client for the hosted issue tracker and its
// wiki. It issues independent HTTP calls and reports each failure
// immediately; there is no retry, backoff, or rollback logic anywhere.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound marks a 404 from the remote; callers test for it with
// errors.Is.
var ErrNotFound = errors.New("resource not found")

// Client talks to the tracker and wiki REST APIs with basic auth
// (account email + API token).
type Client struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
}

// NewClient builds a client for the instance at baseURL. A trailing slash
// on baseURL is tolerated.
func NewClient(baseURL, email, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one JSON request. A non-nil body is marshalled as the
// request payload; a non-nil out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "marshal %s %s request", method, path)
		}
		payload = bytes.NewReader(b)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return errors.Wrapf(err, "construct %s %s request", method, path)
	}
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	slog.Debug("tracker request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out != nil && len(b) > 0 {
		if err := json.Unmarshal(b, out); err != nil {
			return errors.Wrapf(err, "unmarshal %s %s response", method, path)
		}
	}
	return nil
}
