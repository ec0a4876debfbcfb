package generations

import "context"

// Repo persists generation audit records.
type Repo interface {
	Create(ctx context.Context, gen Generation) error
	GetByID(ctx context.Context, id string) (Generation, error)
	List(ctx context.Context, limit, offset int) ([]Generation, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// normalizePage clamps limit into [1, maxListLimit] and offset to >= 0.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func validate(gen Generation) error {
	if gen.ID == "" || len(gen.ContentSHA256) != 64 || gen.SizeBytes < 0 {
		return ErrInvalidInput
	}
	return nil
}
