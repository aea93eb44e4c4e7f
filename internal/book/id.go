package book

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NanoIDGenerator issues 21-character URL-safe ids.
type NanoIDGenerator struct{}

func (NanoIDGenerator) NewID() (string, error) {
	return gonanoid.New()
}
