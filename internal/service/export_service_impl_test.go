package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/boppreh/workspace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_WritesJSONDocument(t *testing.T) {
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("alpha",
		testutil.WithLanguage("Go", 4, 900),
		testutil.WithVCS(testutil.DirtyVCS()),
		testutil.WithManifest(domain.Manifest{Manager: domain.ManagerGo, Path: "go.mod", Name: "example.com/alpha"}),
	)))
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("beta")))

	out := filepath.Join(t.TempDir(), "workspace.json")
	count, err := NewExportService(repo).Export(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		GeneratedAt string `json:"generated_at"`
		Projects    []struct {
			Name      string `json:"name"`
			Language  string `json:"language"`
			TotalSLOC int    `json:"total_sloc"`
			VCS       *struct {
				State string `json:"state"`
				Dirty bool   `json:"dirty"`
			} `json:"vcs"`
			Manifests []struct {
				Manager string `json:"manager"`
				Name    string `json:"name"`
			} `json:"manifests"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc.GeneratedAt)

	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "alpha", doc.Projects[0].Name)
	assert.Equal(t, 900, doc.Projects[0].TotalSLOC)
	require.NotNil(t, doc.Projects[0].VCS)
	assert.Equal(t, "dirty", doc.Projects[0].VCS.State)
	require.Len(t, doc.Projects[0].Manifests, 1)
	assert.Equal(t, "go", doc.Projects[0].Manifests[0].Manager)

	assert.Nil(t, doc.Projects[1].VCS, "projects without git data export no vcs block")
}

func TestExportService_EmptyCache(t *testing.T) {
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))

	out := filepath.Join(t.TempDir(), "empty.json")
	count, err := NewExportService(repo).Export(context.Background(), out)
	require.NoError(t, err)
	assert.Zero(t, count)

	data, err := os.ReadFile(out)
	require.NoError(t, err, "an empty document is still written")
	assert.Contains(t, string(data), `"projects": []`)
	assert.NotContains(t, string(data), "null")
}

func TestExportService_FailureLeavesNoPartialFile(t *testing.T) {
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testutil.NewTestProject("alpha")))

	out := filepath.Join(t.TempDir(), "missing-dir", "workspace.json")
	_, err := NewExportService(repo).Export(ctx, out)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
