package generations

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const generationColumns = `id, request_id, content_sha256, size_bytes,
    experience_count, education_count, skills_count, languages_count, references_count,
    duration_us, created_at`

// Create inserts a generation.
func (r *PGRepo) Create(ctx context.Context, gen Generation) error {
	if err := validate(gen); err != nil {
		return err
	}
	const query = `
INSERT INTO generations (` + generationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		gen.ID,
		gen.RequestID,
		gen.ContentSHA256,
		gen.SizeBytes,
		gen.Counts.Experience,
		gen.Counts.Education,
		gen.Counts.Skills,
		gen.Counts.Languages,
		gen.Counts.References,
		gen.Duration.Microseconds(),
		gen.CreatedAt,
	)
	return err
}

// GetByID returns a generation by ID. Non-UUID ids cannot exist and map to ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Generation{}, ErrNotFound
	}
	const query = `
SELECT ` + generationColumns + `
FROM generations
WHERE id = $1
LIMIT 1`
	gen, err := scanGeneration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	return gen, nil
}

// List returns generations newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Generation, error) {
	limit, offset = normalizePage(limit, offset)
	const query = `
SELECT ` + generationColumns + `
FROM generations
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Generation{}
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, gen)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (Generation, error) {
	var (
		gen        Generation
		durationUS int64
	)
	err := row.Scan(
		&gen.ID,
		&gen.RequestID,
		&gen.ContentSHA256,
		&gen.SizeBytes,
		&gen.Counts.Experience,
		&gen.Counts.Education,
		&gen.Counts.Skills,
		&gen.Counts.Languages,
		&gen.Counts.References,
		&durationUS,
		&gen.CreatedAt,
	)
	if err != nil {
		return Generation{}, err
	}
	gen.Duration = time.Duration(durationUS) * time.Microsecond
	return gen, nil
}

var _ Repo = (*PGRepo)(nil)
