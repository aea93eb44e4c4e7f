package book

import (
	"context"
	"fmt"
	"time"
)

// Service owns the book collection and its five operations.
type Service struct {
	repo Repository
	ids  IDGenerator
	now  func() time.Time
}

// NewService creates a new book service.
func NewService(repo Repository, ids IDGenerator) *Service {
	return &Service{repo: repo, ids: ids, now: time.Now}
}

// Create validates in, stores a new book at the tail of the collection and
// returns its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := Validate(in); err != nil {
		return "", err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate book id: %w", err)
	}

	now := Timestamp{s.now()}
	b := Book{
		ID:         id,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	in.apply(&b)

	if err := s.repo.Append(ctx, b); err != nil {
		return "", fmt.Errorf("append book %s: %w", id, err)
	}
	return id, nil
}

// List returns the id, name and publisher of every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.summary())
	}
	return out, nil
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every field of the book except id and insertedAt.
// Input validation runs before the id lookup.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if err := Validate(in); err != nil {
		return err
	}

	now := s.now()
	_, err := s.repo.Update(ctx, id, func(b *Book) {
		in.apply(b)
		if now.Before(b.InsertedAt.Time) {
			now = b.InsertedAt.Time
		}
		b.UpdatedAt = Timestamp{now}
	})
	return err
}

// Delete removes the book with the given id. Deleting an id twice fails the
// second time with ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
