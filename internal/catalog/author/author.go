// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

// Package author implements the author side of the catalog: CRUD over
// authors, their book listings, and the aggregated writing statistics.
package author

import "time"

// Author represents a writer in the catalog.
type Author struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio"`
	Nationality *string   `json:"nationality"`
	BirthYear   *int      `json:"birthYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Books is always present on API reads, empty slice included.
	Books []Book  `json:"books"`
	Count *Counts `json:"_count,omitempty"`
}

// Counts carries relation counts alongside an author payload.
type Counts struct {
	Books int `json:"books"`
}

// Book is a read model of a book owned by an author.
//
// The book package owns the full entity; this view exists so author
// payloads can embed book rows without a package cycle.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"publishedYear"`
	Genre         *string   `json:"genre"`
	Pages         *int      `json:"pages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldBio       = "bio"
	FieldBirthYear = "birthYear"
	FieldID        = "id"
)
