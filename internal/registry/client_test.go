package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(manager domain.PackageManager, endpoint string) Config {
	return Config{
		Endpoints:  map[domain.PackageManager]string{manager: endpoint},
		TimeoutMs:  2000,
		MaxRetries: 1,
		CacheSize:  16,
		CacheTTL:   time.Minute,
	}
}

func TestLatest_GoProxy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/github.com/!big!corp/lib/@latest", r.URL.Path)
		w.Write([]byte(`{"Version":"v1.4.2","Time":"2026-08-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerGo, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerGo, "github.com/BigCorp/lib")
	require.NoError(t, err)
	assert.Equal(t, "v1.4.2", version)
}

func TestLatest_Npm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/left-pad/latest", r.URL.Path)
		w.Write([]byte(`{"name":"left-pad","version":"1.3.0"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerNpm, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerNpm, "left-pad")
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", version)
}

func TestLatest_PyPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pypi/requests/json", r.URL.Path)
		w.Write([]byte(`{"info":{"name":"requests","version":"2.32.0"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerPyPI, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerPyPI, "requests")
	require.NoError(t, err)
	assert.Equal(t, "2.32.0", version)
}

func TestLatest_CratesPrefersMaxStable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/crates/serde", r.URL.Path)
		w.Write([]byte(`{"crate":{"max_stable_version":"1.0.210","newest_version":"2.0.0-beta.1"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerCargo, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerCargo, "serde")
	require.NoError(t, err)
	assert.Equal(t, "1.0.210", version)
}

func TestLatest_CratesFallsBackToNewest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crate":{"newest_version":"0.1.0-alpha"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerCargo, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerCargo, "prerelease-only")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0-alpha", version)
}

func TestLatest_NotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerNpm, srv.URL), nil)
	_, err := client.Latest(context.Background(), domain.ManagerNpm, "no-such-package")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load(), "404 is definitive and must not be retried")
}

func TestLatest_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"version":"9.9.9"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerNpm, srv.URL), nil)
	version, err := client.Latest(context.Background(), domain.ManagerNpm, "flaky")
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLatest_CachesSuccessfulLookups(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"version":"1.0.0"}`))
	}))
	defer srv.Close()

	var events []LookupEvent
	observer := observerFunc(func(e LookupEvent) { events = append(events, e) })

	client := NewClient(testConfig(domain.ManagerNpm, srv.URL), observer)
	for i := 0; i < 3; i++ {
		version, err := client.Latest(context.Background(), domain.ManagerNpm, "cached")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", version)
	}

	assert.Equal(t, int32(1), calls.Load())
	require.Len(t, events, 3)
	assert.False(t, events[0].CacheHit)
	assert.True(t, events[1].CacheHit)
	assert.True(t, events[2].CacheHit)
}

func TestLatest_InvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(domain.ManagerNpm, srv.URL), nil)
	_, err := client.Latest(context.Background(), domain.ManagerNpm, "garbage")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestLatest_UnsupportedManager(t *testing.T) {
	client := NewClient(Config{Endpoints: map[domain.PackageManager]string{}, TimeoutMs: 100, CacheSize: 1, CacheTTL: time.Minute}, nil)
	_, err := client.Latest(context.Background(), domain.ManagerGo, "example.com/mod")
	assert.ErrorIs(t, err, ErrUnsupportedManager)
}

func TestLatest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"version":"1.0.0"}`))
	}))
	defer srv.Close()

	cfg := testConfig(domain.ManagerNpm, srv.URL)
	cfg.TimeoutMs = 20
	cfg.MaxRetries = 0

	client := NewClient(cfg, nil)
	_, err := client.Latest(context.Background(), domain.ManagerNpm, "slow")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestEscapeGoModule(t *testing.T) {
	assert.Equal(t, "github.com/!azure/azure-sdk", escapeGoModule("github.com/Azure/azure-sdk"))
	assert.Equal(t, "example.com/plain", escapeGoModule("example.com/plain"))
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(LookupEvent)

func (f observerFunc) OnLookupComplete(e LookupEvent) { f(e) }
