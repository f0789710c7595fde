// Package pagination is the page/limit request and result contract shared by
// every list endpoint and by the client side feed
package pagination

import (
	"math"

	perr "kudoswall/internal/platform/errors"
)

// Params selects one 1-based page of limit items
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewParams rejects page or limit below 1
func NewParams(page, limit int) (Params, error) {
	p := Params{Page: page, Limit: limit}
	return p, p.Validate()
}

// Validate reports the first out of range field as an invalid argument
func (p Params) Validate() error {
	if p.Page < 1 {
		return perr.WithField(perr.InvalidArgf("page must be >= 1, got %d", p.Page), "page")
	}
	if p.Limit < 1 {
		return perr.WithField(perr.InvalidArgf("limit must be >= 1, got %d", p.Limit), "limit")
	}
	return nil
}

// Offset is the number of items before the page; it saturates at math.MaxInt
// instead of wrapping for very large pages
func (p Params) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// PastEnd reports whether the page starts at or after the last of total items
func (p Params) PastEnd(total int64) bool {
	if total <= 0 || p.Limit < 1 {
		return true
	}
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int64(p.Page-1) >= pages
}

// Meta describes where a page sits in the full result
type Meta struct {
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
}

// NewMeta echoes p and derives TotalPages as ceil(total/limit)
func NewMeta(p Params, total int) Meta {
	return Meta{
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		CurrentPage:  p.Page,
		TotalPages:   TotalPages(total, p.Limit),
	}
}

// TotalPages is ceil(total/limit); 0 when there is nothing or limit is invalid
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// HasNext reports whether a page follows CurrentPage
func (m Meta) HasNext() bool { return m.CurrentPage < m.TotalPages }

// HasPrev reports whether a page precedes CurrentPage
func (m Meta) HasPrev() bool { return m.CurrentPage > 1 }

// Result is one page of T plus its metadata
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewResult builds a Result; nil data becomes an empty slice so it encodes as []
// a page past the end is not clamped, it is simply empty
func NewResult[T any](data []T, p Params, total int) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{Data: data, Pagination: NewMeta(p, total)}
}

// Map converts each item keeping the metadata
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, len(r.Data))
	for i, v := range r.Data {
		out[i] = fn(v)
	}
	return Result[U]{Data: out, Pagination: r.Pagination}
}
