package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/boppreh/workspace/internal/db"
	"github.com/boppreh/workspace/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo. It accepts either
// a *sql.DB or a *sql.Tx for transactional composition.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

const projectColumns = `id, name, path, language, file_count, total_sloc, size_bytes,
	scan_ms, scanned_at, branch, dirty, ahead, behind, has_upstream, last_commit_at`

func (r *SQLiteProjectRepo) Save(ctx context.Context, p *domain.Project) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, p.Name); err != nil {
		return fmt.Errorf("clearing previous snapshot: %w", err)
	}

	var branch interface{}
	var dirty, ahead, behind, hasUpstream interface{}
	var lastCommit interface{}
	if p.VCS != nil {
		branch = p.VCS.Branch
		dirty = boolToInt(p.VCS.Dirty)
		ahead = p.VCS.Ahead
		behind = p.VCS.Behind
		hasUpstream = boolToInt(p.VCS.HasUpstream)
		lastCommit = nullableTimeToString(p.VCS.LastCommitAt, time.RFC3339)
	}

	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Path,
		p.Language,
		p.FileCount,
		p.TotalSLOC,
		p.SizeBytes,
		p.ScanDuration.Milliseconds(),
		p.ScannedAt.UTC().Format(time.RFC3339),
		branch, dirty, ahead, behind, hasUpstream, lastCommit,
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	for _, stat := range p.Languages {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO language_stats (project_id, language, file_count, sloc) VALUES (?, ?, ?, ?)`,
			p.ID, stat.Language, stat.FileCount, stat.SLOC,
		)
		if err != nil {
			return fmt.Errorf("inserting language stat %q: %w", stat.Language, err)
		}
	}

	for _, m := range p.Manifests {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO manifests (project_id, manager, path, name, version) VALUES (?, ?, ?, ?, ?)`,
			p.ID, string(m.Manager), m.Path, m.Name, m.Version,
		)
		if err != nil {
			return fmt.Errorf("inserting manifest %s: %w", m.Path, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, name)
	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found: %q", name)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if err := r.loadChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// ListManifests returns one PackageReport stub per stored manifest, joined
// with its project name, ready for registry lookups.
func (r *SQLiteProjectRepo) ListManifests(ctx context.Context) ([]domain.PackageReport, error) {
	query := `SELECT p.name, m.manager, m.path, m.name, m.version
		FROM manifests m JOIN projects p ON p.id = m.project_id
		ORDER BY p.name, m.manager`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing manifests: %w", err)
	}
	defer rows.Close()

	var reports []domain.PackageReport
	for rows.Next() {
		var rep domain.PackageReport
		var manager string
		if err := rows.Scan(&rep.ProjectName, &manager, &rep.Manifest.Path, &rep.Manifest.Name, &rep.Manifest.Version); err != nil {
			return nil, fmt.Errorf("scanning manifest row: %w", err)
		}
		rep.Manifest.Manager = domain.PackageManager(manager)
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating manifests: %w", err)
	}
	return reports, nil
}

func (r *SQLiteProjectRepo) DeleteByName(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) loadChildren(ctx context.Context, p *domain.Project) error {
	stats, err := r.db.QueryContext(ctx,
		`SELECT language, file_count, sloc FROM language_stats
		WHERE project_id = ? ORDER BY file_count DESC, language`, p.ID)
	if err != nil {
		return fmt.Errorf("loading language stats: %w", err)
	}
	defer stats.Close()
	for stats.Next() {
		var stat domain.LanguageStat
		if err := stats.Scan(&stat.Language, &stat.FileCount, &stat.SLOC); err != nil {
			return fmt.Errorf("scanning language stat: %w", err)
		}
		p.Languages = append(p.Languages, stat)
	}
	if err := stats.Err(); err != nil {
		return fmt.Errorf("iterating language stats: %w", err)
	}

	manifests, err := r.db.QueryContext(ctx,
		`SELECT manager, path, name, version FROM manifests
		WHERE project_id = ? ORDER BY manager, path`, p.ID)
	if err != nil {
		return fmt.Errorf("loading manifests: %w", err)
	}
	defer manifests.Close()
	for manifests.Next() {
		var m domain.Manifest
		var manager string
		if err := manifests.Scan(&manager, &m.Path, &m.Name, &m.Version); err != nil {
			return fmt.Errorf("scanning manifest: %w", err)
		}
		m.Manager = domain.PackageManager(manager)
		p.Manifests = append(p.Manifests, m)
	}
	if err := manifests.Err(); err != nil {
		return fmt.Errorf("iterating manifests: %w", err)
	}
	return nil
}

// scanProject scans one project row via the provided Scan function, which
// works for both *sql.Row and *sql.Rows.
func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var scanMs int64
	var scannedAtStr string
	var branch, lastCommitStr sql.NullString
	var dirty, ahead, behind, hasUpstream sql.NullInt64

	err := scan(
		&p.ID, &p.Name, &p.Path, &p.Language,
		&p.FileCount, &p.TotalSLOC, &p.SizeBytes,
		&scanMs, &scannedAtStr,
		&branch, &dirty, &ahead, &behind, &hasUpstream, &lastCommitStr,
	)
	if err != nil {
		return nil, err
	}

	p.ScanDuration = time.Duration(scanMs) * time.Millisecond
	p.ScannedAt, err = time.Parse(time.RFC3339, scannedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing scanned_at: %w", err)
	}

	// VCS columns are NULL as a group when the scan had no git data.
	if dirty.Valid {
		p.VCS = &domain.VCSStatus{
			Branch:       branch.String,
			Dirty:        intToBool(int(dirty.Int64)),
			Ahead:        int(ahead.Int64),
			Behind:       int(behind.Int64),
			HasUpstream:  intToBool(int(hasUpstream.Int64)),
			LastCommitAt: parseNullableTime(lastCommitStr, time.RFC3339),
		}
	}
	return &p, nil
}
