// Package memory keeps entities in process memory. It backs DB_DRIVER=memory
// for local runs and the HTTP tests; nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"
)

type document[T any] interface {
	*T
	entity.Document
}

type record[T any] struct {
	row T
	seq uint64
}

// memoryRepository is ready to use as a zero value.
type memoryRepository[T any, PT document[T]] struct {
	mu   sync.RWMutex
	rows map[string]record[T]
	seq  uint64
	// unique returns the value of a uniquely indexed field, if any.
	unique func(*T) string
}

func (r *memoryRepository[T, PT]) Create(_ context.Context, e *T) error {
	PT(e).Stamp(time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rows == nil {
		r.rows = make(map[string]record[T])
	}
	id := PT(e).GetID()
	if _, ok := r.rows[id]; ok {
		return fmt.Errorf("%w: _id", domainRepo.ErrDuplicateKey)
	}
	if err := r.checkUnique(e, id); err != nil {
		return err
	}
	r.seq++
	r.rows[id] = record[T]{row: *e, seq: r.seq}
	return nil
}

func (r *memoryRepository[T, PT]) FindAll(_ context.Context) ([]T, error) {
	return r.filter(func(*T) bool { return true }), nil
}

func (r *memoryRepository[T, PT]) FindByID(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	row := rec.row
	return &row, nil
}

func (r *memoryRepository[T, PT]) Update(_ context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := PT(e).GetID()
	rec, ok := r.rows[id]
	if !ok {
		return nil
	}
	if err := r.checkUnique(e, id); err != nil {
		return err
	}
	rec.row = *e
	r.rows[id] = rec
	return nil
}

func (r *memoryRepository[T, PT]) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

// filter returns copies of the matching rows, newest first. Rows created at
// the same instant keep reverse insertion order.
func (r *memoryRepository[T, PT]) filter(match func(*T) bool) []T {
	r.mu.RLock()
	found := make([]record[T], 0, len(r.rows))
	for _, rec := range r.rows {
		if match(&rec.row) {
			found = append(found, rec)
		}
	}
	r.mu.RUnlock()

	sort.Slice(found, func(i, j int) bool {
		ti := PT(&found[i].row).GetCreatedAt()
		tj := PT(&found[j].row).GetCreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return found[i].seq > found[j].seq
	})

	out := make([]T, len(found))
	for i, rec := range found {
		out[i] = rec.row
	}
	return out
}

// checkUnique must be called with the write lock held.
func (r *memoryRepository[T, PT]) checkUnique(e *T, id string) error {
	if r.unique == nil {
		return nil
	}
	key := r.unique(e)
	for otherID, rec := range r.rows {
		if otherID != id && r.unique(&rec.row) == key {
			return fmt.Errorf("%w: unique index", domainRepo.ErrDuplicateKey)
		}
	}
	return nil
}
