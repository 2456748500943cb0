package service

import (
	"context"
	"testing"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/boppreh/workspace/internal/testutil"
	"github.com/boppreh/workspace/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_CachedStates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("clean", testutil.WithVCS(testutil.CleanVCS()))))
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("dirty", testutil.WithVCS(testutil.DirtyVCS()))))
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("ahead",
		testutil.WithVCS(&domain.VCSStatus{Branch: "main", Ahead: 3, HasUpstream: true}))))
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("diverged",
		testutil.WithVCS(&domain.VCSStatus{Branch: "main", Ahead: 1, Behind: 2, HasUpstream: true}))))

	svc := NewStatusService(repo, vcs.NewGitWithRunner(&testutil.FakeGitRunner{}))
	resp, err := svc.GetStatus(ctx, contract.StatusRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Projects, 4)
	assert.Equal(t, 1, resp.Summary.CountsClean)
	assert.Equal(t, 1, resp.Summary.CountsDirty)
	assert.Equal(t, 2, resp.Summary.CountsUnpushed, "ahead and diverged both count as unpushed")

	byName := make(map[string]contract.ProjectSyncView)
	for _, v := range resp.Projects {
		byName[v.Name] = v
	}
	assert.Equal(t, domain.SyncClean, byName["clean"].State)
	assert.Equal(t, domain.SyncDirty, byName["dirty"].State)
	assert.Equal(t, domain.SyncDiverged, byName["diverged"].State)
}

func TestStatusService_MissingVCSBecomesWarning(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("no-git")))

	svc := NewStatusService(repo, vcs.NewGitWithRunner(&testutil.FakeGitRunner{}))
	resp, err := svc.GetStatus(ctx, contract.StatusRequest{})
	require.NoError(t, err)

	assert.Empty(t, resp.Projects)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "no-git")
}

func TestStatusService_RefreshRereadsGit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	// Cached snapshot says clean; the worktree is dirty now.
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("app", testutil.WithVCS(testutil.CleanVCS()))))

	runner := &testutil.FakeGitRunner{
		Outputs: map[string]string{
			"status --porcelain=v2 --branch": "# branch.head main\n# branch.upstream origin/main\n? new.go\n",
			"log -1 --format=%ct":            "1756166400\n",
		},
	}
	svc := NewStatusService(repo, vcs.NewGitWithRunner(runner))

	resp, err := svc.GetStatus(ctx, contract.StatusRequest{Refresh: true})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, domain.SyncDirty, resp.Projects[0].State)
	assert.NotEmpty(t, runner.Calls)
}

func TestStatusService_RefreshFailureFallsBackToCache(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("app", testutil.WithVCS(testutil.CleanVCS()))))

	runner := &testutil.FakeGitRunner{Err: vcs.ErrNotARepository}
	svc := NewStatusService(repo, vcs.NewGitWithRunner(runner))

	resp, err := svc.GetStatus(ctx, contract.StatusRequest{Refresh: true})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, domain.SyncClean, resp.Projects[0].State)
	require.Len(t, resp.Warnings, 1)
}
