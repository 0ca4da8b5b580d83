// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package author

import (
	"math"
	"slices"

	"github.com/libroteca/api/pkg/slice"
)

// Stats is the aggregated profile of an author's writing career.
type Stats struct {
	TotalBooks   int         `json:"totalBooks"`
	FirstBook    *Milestone  `json:"firstBook"`
	LatestBook   *Milestone  `json:"latestBook"`
	AveragePages int         `json:"averagePages"`
	Genres       []string    `json:"genres"`
	LongestBook  *PageExtent `json:"longestBook"`
	ShortestBook *PageExtent `json:"shortestBook"`
}

// Milestone identifies a book by publication year.
type Milestone struct {
	Title string `json:"title"`
	Year  *int   `json:"year"`
}

// PageExtent identifies a book by page count.
type PageExtent struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

// ComputeStats reduces an author's book list to its aggregate statistics.
//
// It is a pure function: no I/O, no mutation of the input. Ties on year or
// page count resolve to the earlier element of the input order, because the
// folds only move the accumulator on strict inequality.
func ComputeStats(books []Book) Stats {
	stats := Stats{
		TotalBooks: len(books),
		Genres:     []string{},
	}
	if len(books) == 0 {
		return stats
	}

	// First/latest publication, over books that carry a year.
	dated := slice.Filter(books, func(b Book) bool { return b.PublishedYear != nil })
	if len(dated) == 0 {
		// No year data at all: fall back to input positions.
		stats.FirstBook = &Milestone{Title: books[0].Title, Year: books[0].PublishedYear}
		stats.LatestBook = &Milestone{Title: books[len(books)-1].Title, Year: books[len(books)-1].PublishedYear}
	} else {
		first := slice.Reduce(dated[1:], dated[0], func(acc Book, cur Book) Book {
			if *cur.PublishedYear < *acc.PublishedYear {
				return cur
			}
			return acc
		})
		latest := slice.Reduce(dated[1:], dated[0], func(acc Book, cur Book) Book {
			if *cur.PublishedYear > *acc.PublishedYear {
				return cur
			}
			return acc
		})
		stats.FirstBook = &Milestone{Title: first.Title, Year: first.PublishedYear}
		stats.LatestBook = &Milestone{Title: latest.Title, Year: latest.PublishedYear}
	}

	// Page statistics, over books that carry a page count.
	paged := slice.Filter(books, func(b Book) bool { return b.Pages != nil })
	if len(paged) > 0 {
		totalPages := slice.Reduce(paged, 0, func(acc int, b Book) int { return acc + *b.Pages })
		stats.AveragePages = int(math.Round(float64(totalPages) / float64(len(paged))))

		longest := slice.Reduce(paged[1:], paged[0], func(acc Book, cur Book) Book {
			if *cur.Pages > *acc.Pages {
				return cur
			}
			return acc
		})
		shortest := slice.Reduce(paged[1:], paged[0], func(acc Book, cur Book) Book {
			if *cur.Pages < *acc.Pages {
				return cur
			}
			return acc
		})
		stats.LongestBook = &PageExtent{Title: longest.Title, Pages: *longest.Pages}
		stats.ShortestBook = &PageExtent{Title: shortest.Title, Pages: *shortest.Pages}
	}

	// Distinct genres, first-seen order preserved.
	for _, b := range books {
		if b.Genre == nil {
			continue
		}
		if !slices.Contains(stats.Genres, *b.Genre) {
			stats.Genres = append(stats.Genres, *b.Genre)
		}
	}

	return stats
}
