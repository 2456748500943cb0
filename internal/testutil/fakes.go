package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/boppreh/workspace/internal/domain"
)

// FakeGitRunner replies to git invocations from a canned script. Keys are
// the joined argument list ("status --porcelain=v2 --branch"); an Err short
// circuits every call. Safe for concurrent use.
type FakeGitRunner struct {
	Outputs map[string]string
	Err     error

	mu sync.Mutex
	// Calls records each invocation as "dir: args".
	Calls []string
}

func (f *FakeGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.mu.Lock()
	f.Calls = append(f.Calls, dir+": "+key)
	f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	return f.Outputs[key], nil
}

// FakeRegistryClient serves latest versions from a map keyed by
// "manager/name". Missing entries return Err (or an empty version).
type FakeRegistryClient struct {
	Versions map[string]string
	Err      error
}

func (f *FakeRegistryClient) Latest(ctx context.Context, manager domain.PackageManager, name string) (string, error) {
	if version, ok := f.Versions[string(manager)+"/"+name]; ok {
		return version, nil
	}
	return "", f.Err
}
