package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/boppreh/workspace/internal/domain"
)

// resolveProject matches user input against cached project names: exact
// match first (case-insensitive), then unique prefix.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project name is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(input)) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q (run 'workspace scan' to refresh the cache)", input)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, p := range matches {
			names[i] = p.Name
		}
		return nil, fmt.Errorf("project name %q is ambiguous: %s", input, strings.Join(names, ", "))
	}
}
