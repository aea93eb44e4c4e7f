package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	Append(ctx context.Context, b Book) error
	List(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id string) (Book, error)
	// Update applies fn to the stored record under the repository's write lock
	// and returns the result. It returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, fn func(*Book)) (Book, error)
	Remove(ctx context.Context, id string) error
}

// IDGenerator produces ids for new books.
type IDGenerator interface {
	NewID() (string, error)
}
