// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

// Package book implements the book side of the catalog: CRUD over books
// and the filtered, paginated search endpoint.
package book

import "time"

// Book represents a published work in the catalog.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"publishedYear"`
	Genre         *string   `json:"genre"`
	Pages         *int      `json:"pages"`
	AuthorID      string    `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Author is populated on reads, never taken from request bodies.
	Author *AuthorSummary `json:"author,omitempty"`
}

// AuthorSummary is the subset of author fields embedded in book payloads.
//
// The author package owns the full entity; this view exists so book
// payloads can carry owner details without a package cycle.
type AuthorSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Nationality *string `json:"nationality"`
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldAuthorID = "authorId"
	FieldPages    = "pages"
	FieldID       = "id"
)
