// Package wapi implements a minimal Infoblox NIOS WAPI client covering the
// authoritative zone lock operations: querying zone lock state and toggling
// the lock through the lock_unlock_zone function call.
package wapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// returnFields restricts zone queries to the fields the tool consumes.
const returnFields = "fqdn,locked,locked_by"

var (
	// ErrAmbiguousZone reports a zone name that resolved to zero or more
	// than one zone. Ambiguous targets are never acted upon.
	ErrAmbiguousZone = errors.New("zone name did not resolve to exactly one zone")

	// ErrUnexpectedBody reports a lock/unlock call whose successful status
	// carried something other than the empty JSON object.
	ErrUnexpectedBody = errors.New("unexpected lock_unlock_zone response body")
)

// Config carries the grid master connection settings. It is fixed for the
// lifetime of the client.
type Config struct {
	GridMaster   string
	APIVersion   string
	Username     string
	Password     string
	ValidateCert bool
	Timeout      time.Duration
}

// Client issues zone lock operations against a NIOS grid master. It owns a
// single HTTP client and is not intended for concurrent use.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient builds a client for https://{gm}/wapi/{version} with basic auth.
// TLS certificate verification is skipped unless cfg.ValidateCert is set,
// so self-signed grid master certificates work out of the box.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.GridMaster) == "" {
		return nil, errors.New("grid master host is required")
	}
	if strings.TrimSpace(cfg.APIVersion) == "" {
		return nil, errors.New("WAPI version is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !cfg.ValidateCert}

	return &Client{
		baseURL:  fmt.Sprintf("https://%s/wapi/%s", cfg.GridMaster, cfg.APIVersion),
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// QueryZones fetches zone records with their lock state, optionally filtered
// to a single fqdn. Zero matches yield an empty slice and a nil error;
// transport and HTTP failures are returned to the caller.
func (c *Client) QueryZones(ctx context.Context, fqdn string) ([]Zone, error) {
	query := url.Values{}
	query.Set("_return_fields", returnFields)
	if fqdn != "" {
		query.Set("fqdn", fqdn)
	}

	payload, err := c.do(ctx, http.MethodGet, apiRequest{path: "zone_auth", query: query})
	if err != nil {
		return nil, err
	}

	var zones []Zone
	if err := json.Unmarshal(payload, &zones); err != nil {
		return nil, fmt.Errorf("decode zone data: %w", err)
	}
	return zones, nil
}

// LockZone locks the zone named by fqdn, or addressed directly by ref.
// When ref is empty the name must resolve to exactly one zone.
func (c *Client) LockZone(ctx context.Context, fqdn, ref string) error {
	return c.lockUnlock(ctx, fqdn, ref, OperationLock)
}

// UnlockZone is the symmetric counterpart of LockZone.
func (c *Client) UnlockZone(ctx context.Context, fqdn, ref string) error {
	return c.lockUnlock(ctx, fqdn, ref, OperationUnlock)
}

// Ping verifies grid master reachability and credentials with a minimal
// zone query.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("_max_results", "1")
	_, err := c.do(ctx, http.MethodGet, apiRequest{path: "zone_auth", query: query})
	return err
}

func (c *Client) lockUnlock(ctx context.Context, fqdn, ref string, op Operation) error {
	if ref == "" {
		resolved, err := c.refByName(ctx, fqdn)
		if err != nil {
			return err
		}
		ref = resolved
	}

	query := url.Values{}
	query.Set("_function", "lock_unlock_zone")
	query.Set("operation", string(op))

	payload, err := c.do(ctx, http.MethodPost, apiRequest{path: ref, query: query})
	if err != nil {
		return err
	}

	// A successful lock_unlock_zone call returns exactly the empty JSON
	// object; any other body signals a grid-side error.
	body := strings.TrimSpace(string(payload))
	if body != "{}" {
		c.logger.Error("lock_unlock_zone returned an error", "operation", op, "body", body)
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, body)
	}
	return nil
}

// refByName resolves a zone name to its object reference, refusing to act
// unless exactly one zone matches.
func (c *Client) refByName(ctx context.Context, fqdn string) (string, error) {
	if strings.TrimSpace(fqdn) == "" {
		return "", fmt.Errorf("%w: no zone name or object reference given", ErrAmbiguousZone)
	}
	zones, err := c.QueryZones(ctx, fqdn)
	if err != nil {
		return "", err
	}
	if len(zones) != 1 {
		return "", fmt.Errorf("%w: %q matched %d zones", ErrAmbiguousZone, fqdn, len(zones))
	}
	return zones[0].Ref, nil
}

func (c *Client) do(ctx context.Context, method string, req apiRequest) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, req.url(c.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, req.path, err)
	}
	httpReq.SetBasicAuth(c.username, c.password)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response for %s: %w", req.path, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Debug("WAPI call failed",
			"method", method, "path", req.path,
			"status", resp.StatusCode, "body", string(payload))
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, req.path, resp.StatusCode)
	}

	c.logger.Debug("WAPI response",
		"method", method, "path", req.path,
		"status", resp.StatusCode, "body", string(payload))
	return payload, nil
}
