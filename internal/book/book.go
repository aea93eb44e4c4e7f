package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no book has the requested id.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateID is returned by a repository asked to append an id it already holds.
var ErrDuplicateID = errors.New("book id already exists")

// ValidationError is a rejected create or update input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrMissingName              = &ValidationError{Field: "name", Reason: "missing name"}
	ErrReadPageExceedsPageCount = &ValidationError{Field: "readPage", Reason: "readPage exceeds pageCount"}
)

// Book represents a book record.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt Timestamp `json:"insertedAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// Summary is the list projection of a Book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Input is the payload accepted by create and update.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount" validate:"min=0"`
	ReadPage  int    `json:"readPage" validate:"min=0,ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// UnmarshalJSON matches keys exactly. encoding/json would otherwise fill Name
// from "NAME" or "Name". Unknown keys are ignored.
func (in *Input) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded Input
	fields := []struct {
		key string
		dst any
	}{
		{"name", &decoded.Name},
		{"year", &decoded.Year},
		{"author", &decoded.Author},
		{"summary", &decoded.Summary},
		{"publisher", &decoded.Publisher},
		{"pageCount", &decoded.PageCount},
		{"readPage", &decoded.ReadPage},
		{"reading", &decoded.Reading},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}

	*in = decoded
	return nil
}

// apply copies every mutable field of in onto b and recomputes finished.
func (in Input) apply(b *Book) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.ReadPage == in.PageCount
}

func (b Book) summary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Timestamp marshals as an ISO 8601 UTC string with millisecond precision.
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(`"`+time.RFC3339Nano+`"`, string(data))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
