package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store owns every persistence query the API needs. Methods that look up a
// single row return (nil, nil) when the row does not exist so handlers can
// map absence to 404 without inspecting gorm errors.
type Store struct {
	db *gorm.DB
}

// New creates a store over an open gorm connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
