// README: Traccar REST client with basic auth, fixed timeout, and sentinel errors.
package traccar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned before any network I/O when the
	// integration has no base URL or credentials. Callers branch on it with
	// errors.Is to report "the feature is off" instead of "the feature is
	// broken".
	ErrNotConfigured = errors.New("traccar integration not configured")
	// ErrNotFound is returned when Traccar does not know the requested id.
	ErrNotFound = errors.New("traccar record not found")
)

const requestTimeout = 10 * time.Second

// Client talks to a Traccar server. The zero-credential client is valid and
// fails every call with ErrNotConfigured.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether the client has everything it needs to reach the
// server.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.username != "" && c.password != ""
}

// Device fetches a single device by Traccar id.
func (c *Client) Device(ctx context.Context, id int64) (*Device, error) {
	var devices []Device
	if err := c.getJSON(ctx, fmt.Sprintf("/api/devices?id=%d", id), &devices); err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNotFound
	}
	return &devices[0], nil
}

// Position fetches a single position record by id.
func (c *Client) Position(ctx context.Context, id int64) (*Position, error) {
	var positions []Position
	if err := c.getJSON(ctx, fmt.Sprintf("/api/positions?id=%d", id), &positions); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, ErrNotFound
	}
	return &positions[0], nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("traccar request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("traccar request %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("traccar decode %s: %w", path, err)
	}
	return nil
}
