package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/izebair/Rezepte/internal/common"
)

// DefaultBaseURL is the Microsoft Graph v1.0 endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client is a minimal OneNote client over the Graph REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      common.RetryOptions
}

// NewClient wraps an authenticated HTTP client (see HTTPClient).
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
	}
}

// WithBaseURL overrides the Graph endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Notebook is a OneNote notebook.
type Notebook struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Section is a section within a notebook.
type Section struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// User is the signed-in account.
type User struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
}

type listResponse[T any] struct {
	Value []T `json:"value"`
}

// Me returns the signed-in user. Cheap connectivity and auth check.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListNotebooks returns the user's notebooks.
func (c *Client) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	var resp listResponse[Notebook]
	if err := c.getJSON(ctx, "/me/onenote/notebooks", &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// FindNotebook locates a notebook by display name, case-insensitively.
// When no notebook matches, the first notebook is returned so an import
// still lands somewhere visible.
func (c *Client) FindNotebook(ctx context.Context, name string) (*Notebook, error) {
	notebooks, err := c.ListNotebooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(notebooks) == 0 {
		return nil, common.ErrNoNotebooks
	}

	for i := range notebooks {
		if strings.EqualFold(notebooks[i].DisplayName, name) {
			return &notebooks[i], nil
		}
	}
	return &notebooks[0], nil
}

// ListSections returns the sections of a notebook.
func (c *Client) ListSections(ctx context.Context, notebookID string) ([]Section, error) {
	var resp listResponse[Section]
	path := fmt.Sprintf("/me/onenote/notebooks/%s/sections", url.PathEscape(notebookID))
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// CreateSection creates a section in a notebook.
func (c *Client) CreateSection(ctx context.Context, notebookID, name string) (*Section, error) {
	body, err := json.Marshal(map[string]string{"displayName": name})
	if err != nil {
		return nil, fmt.Errorf("failed to encode section: %w", err)
	}

	var section Section
	path := fmt.Sprintf("/me/onenote/notebooks/%s/sections", url.PathEscape(notebookID))
	if err := c.postJSON(ctx, path, "application/json", body, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// FindOrCreateSection resolves a section by display name within a notebook,
// creating it when missing. Lookup is case-insensitive.
func (c *Client) FindOrCreateSection(ctx context.Context, notebookID, name string) (*Section, error) {
	sections, err := c.ListSections(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	for i := range sections {
		if strings.EqualFold(sections[i].DisplayName, name) {
			return &sections[i], nil
		}
	}

	return c.CreateSection(ctx, notebookID, name)
}

// CreatePage creates a OneNote page from an XHTML document.
func (c *Client) CreatePage(ctx context.Context, sectionID, html string) error {
	path := fmt.Sprintf("/me/onenote/sections/%s/pages", url.PathEscape(sectionID))
	return c.postJSON(ctx, path, "application/xhtml+xml", []byte(html), nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		return c.do(req, out)
	}, c.retry)
}

func (c *Client) postJSON(ctx context.Context, path, contentType string, body []byte, out any) error {
	return common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		return c.do(req, out)
	}, c.retry)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: %v", common.ErrGraphConnection, err),
			Retryable: true,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatus maps HTTP failures onto the retry policy: throttling and
// server errors are retryable, everything else fails immediately.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err := fmt.Errorf("graph API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &common.RetryableError{Err: fmt.Errorf("%w: %v", common.ErrRateLimit, err), Retryable: true}
	case resp.StatusCode >= 500:
		return &common.RetryableError{Err: err, Retryable: true}
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", common.ErrAuthRequired, err)
	default:
		return err
	}
}
