package book

import (
	"context"
	"sync"
)

// MemoryRepository keeps books in process memory in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []Book
	index map[string]int // id -> position in books
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{index: make(map[string]int)}
}

func (r *MemoryRepository) Append(ctx context.Context, b Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[b.ID]; exists {
		return ErrDuplicateID
	}
	r.index[b.ID] = len(r.books)
	r.books = append(r.books, b)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fn func(*Book)) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	updated := r.books[i]
	fn(&updated)
	// id is the index key and never changes.
	updated.ID = id
	r.books[i] = updated
	return updated, nil
}

func (r *MemoryRepository) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.books); j++ {
		r.index[r.books[j].ID] = j
	}
	return nil
}
