// Package registry queries public package registries for the latest
// published version of a package. Lookups are cached in an expiring LRU so
// repeated freshness reports stay cheap.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Client resolves the latest published version of a package.
type Client interface {
	// Latest returns the newest version the registry knows about.
	Latest(ctx context.Context, manager domain.PackageManager, name string) (string, error)
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	cache    *expirable.LRU[string, string]
	observer Observer
}

// NewClient creates a registry Client with the given config and observer.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 128
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		cache:    expirable.NewLRU[string, string](size, nil, cfg.CacheTTL),
		observer: observer,
	}
}

func (c *httpClient) Latest(ctx context.Context, manager domain.PackageManager, name string) (string, error) {
	start := time.Now()
	key := string(manager) + "/" + name

	if version, ok := c.cache.Get(key); ok {
		c.observer.OnLookupComplete(LookupEvent{
			Manager: manager, Package: name,
			LatencyMs: time.Since(start).Milliseconds(),
			CacheHit:  true, Success: true,
		})
		return version, nil
	}

	endpoint, ok := c.cfg.Endpoints[manager]
	if !ok || endpoint == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedManager, manager)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var version string
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		version, lastErr = c.lookup(ctx, endpoint, manager, name)
		if lastErr == nil {
			break
		}
		// Not found is definitive; don't retry. Same for a dead context.
		if errors.Is(lastErr, ErrNotFound) || ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	if lastErr != nil {
		c.observer.OnLookupComplete(LookupEvent{
			Manager: manager, Package: name,
			LatencyMs: latency, Success: false,
			ErrorCode: errorCode(lastErr),
		})
		if ctx.Err() != nil {
			return "", ErrTimeout
		}
		if errors.Is(lastErr, ErrNotFound) || errors.Is(lastErr, ErrInvalidResponse) {
			return "", lastErr
		}
		if isConnectionError(lastErr) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}

	c.cache.Add(key, version)
	c.observer.OnLookupComplete(LookupEvent{
		Manager: manager, Package: name,
		LatencyMs: latency, Success: true,
	})
	return version, nil
}

func (c *httpClient) lookup(ctx context.Context, endpoint string, manager domain.PackageManager, name string) (string, error) {
	url, err := lookupURL(endpoint, manager, name)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("registry returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return parseLatest(manager, body)
}

// lookupURL builds the latest-version endpoint for each registry.
func lookupURL(endpoint string, manager domain.PackageManager, name string) (string, error) {
	base := strings.TrimRight(endpoint, "/")
	switch manager {
	case domain.ManagerGo:
		// The module proxy requires lowercased, !-escaped paths; declared
		// module paths are matched case-insensitively by lowering only.
		return base + "/" + escapeGoModule(name) + "/@latest", nil
	case domain.ManagerNpm:
		return base + "/" + url.PathEscape(name) + "/latest", nil
	case domain.ManagerPyPI:
		return base + "/pypi/" + url.PathEscape(name) + "/json", nil
	case domain.ManagerCargo:
		return base + "/api/v1/crates/" + url.PathEscape(name), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedManager, manager)
	}
}

// escapeGoModule applies the module proxy's case encoding: every uppercase
// letter becomes "!" followed by its lowercase form.
func escapeGoModule(path string) string {
	var b strings.Builder
	for _, r := range path {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('!')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseLatest(manager domain.PackageManager, body []byte) (string, error) {
	switch manager {
	case domain.ManagerGo:
		var info struct {
			Version string `json:"Version"`
		}
		if err := json.Unmarshal(body, &info); err != nil || info.Version == "" {
			return "", ErrInvalidResponse
		}
		return info.Version, nil
	case domain.ManagerNpm:
		var pkg struct {
			Version string `json:"version"`
		}
		if err := json.Unmarshal(body, &pkg); err != nil || pkg.Version == "" {
			return "", ErrInvalidResponse
		}
		return pkg.Version, nil
	case domain.ManagerPyPI:
		var payload struct {
			Info struct {
				Version string `json:"version"`
			} `json:"info"`
		}
		if err := json.Unmarshal(body, &payload); err != nil || payload.Info.Version == "" {
			return "", ErrInvalidResponse
		}
		return payload.Info.Version, nil
	case domain.ManagerCargo:
		var payload struct {
			Crate struct {
				MaxStable string `json:"max_stable_version"`
				Newest    string `json:"newest_version"`
			} `json:"crate"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", ErrInvalidResponse
		}
		if payload.Crate.MaxStable != "" {
			return payload.Crate.MaxStable, nil
		}
		if payload.Crate.Newest != "" {
			return payload.Crate.Newest, nil
		}
		return "", ErrInvalidResponse
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedManager, manager)
	}
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "error"
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
