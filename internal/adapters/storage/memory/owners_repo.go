package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/owners"
)

type ownerRepo struct {
	mu   sync.RWMutex
	byID map[string]owners.Owner
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context, page owners.Page) ([]owners.Owner, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedLocked()

	// total antes de paginar
	return pageOfOwners(all, page.Start, page.Limit), len(all), nil
}

func (r *ownerRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// sortedLocked asume que el caller ya tomó el lock.
func (r *ownerRepo) sortedLocked() []owners.Owner {
	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func pageOfOwners(os []owners.Owner, start, limit int) []owners.Owner {
	if start >= len(os) {
		return []owners.Owner{}
	}
	end := start + limit
	if end > len(os) {
		end = len(os)
	}
	return os[start:end]
}
