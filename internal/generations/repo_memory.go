package generations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Generation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Generation)}
}

// Create stores the generation.
func (r *MemoryRepo) Create(ctx context.Context, gen Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(gen); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[gen.ID] = gen
	return nil
}

// GetByID returns a generation by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.byID[id]
	if !ok {
		return Generation{}, ErrNotFound
	}
	return gen, nil
}

// List returns generations newest first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = normalizePage(limit, offset)

	r.mu.RLock()
	all := make([]Generation, 0, len(r.byID))
	for _, gen := range r.byID {
		all = append(all, gen)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []Generation{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
