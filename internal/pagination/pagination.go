// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pagination slices an ordered collection into fixed-size pages.
// Page numbers are 1-based. A requested number below 1 resolves to the
// first page and a number past the end clamps to the last page, so every
// request lands on a valid page. Paginate is pure: same input, same page.
package pagination

import "strconv"

// Page is one bounded slice of an ordered listing plus the metadata
// templates need to render previous/next navigation.
type Page[T any] struct {
	Items      []T
	Number     int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate returns the requested page of items. pageSize must be positive;
// number is clamped into [1, TotalPages]. An empty collection yields a
// single empty page so listings always have something to render.
func Paginate[T any](items []T, pageSize, number int) Page[T] {
	total := len(items)

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// PrevNumber returns the previous page number. Only meaningful when
// HasPrev is true.
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the next page number. Only meaningful when HasNext
// is true.
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// ParseNumber converts the raw "page" query parameter into a page number.
// Absent or unparsable values resolve to the first page.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
