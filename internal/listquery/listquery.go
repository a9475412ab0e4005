// Package listquery computes the visible page of rows from a full collection
// plus the dashboard's current controls. The whole pipeline is pure: identical
// inputs always produce identical output.
package listquery

import (
	"sort"
	"strings"
)

type Params struct {
	Search   string
	Page     int
	PageSize int
}

type Result[T any] struct {
	Items        []T
	TotalMatches int
	TotalPages   int
	Page         int
}

type options[T any] struct {
	searchFields func(T) []string
	filters      []func(T) bool
	less         func(a, b T) bool
}

type Option[T any] func(*options[T])

// WithSearchFields configures which fields the free-text search matches
// against. A row matches if any field contains the term, case-insensitively.
func WithSearchFields[T any](fn func(T) []string) Option[T] {
	return func(o *options[T]) { o.searchFields = fn }
}

// WithFilter adds a categorical filter. Filters AND together; pass nothing
// for an unset ("All") filter rather than a match-everything predicate.
func WithFilter[T any](pred func(T) bool) Option[T] {
	return func(o *options[T]) { o.filters = append(o.filters, pred) }
}

func WithSort[T any](less func(a, b T) bool) Option[T] {
	return func(o *options[T]) { o.less = less }
}

// Run filters, sorts and paginates items. Out-of-range pages clamp to the
// last non-empty page; an empty match set yields zero pages and no items.
func Run[T any](items []T, p Params, opts ...Option[T]) Result[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	term := strings.ToLower(strings.TrimSpace(p.Search))

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && o.searchFields != nil && !matchesSearch(o.searchFields(item), term) {
			continue
		}
		if !matchesFilters(item, o.filters) {
			continue
		}
		matched = append(matched, item)
	}

	if o.less != nil {
		sort.SliceStable(matched, func(i, j int) bool { return o.less(matched[i], matched[j]) })
	}

	size := p.PageSize
	if size <= 0 {
		size = 10
	}
	total := len(matched)
	pages := (total + size - 1) / size

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > pages && pages > 0 {
		page = pages
	}

	if total == 0 {
		return Result[T]{Items: []T{}, TotalMatches: 0, TotalPages: 0, Page: 1}
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Result[T]{
		Items:        matched[start:end],
		TotalMatches: total,
		TotalPages:   pages,
		Page:         page,
	}
}

func matchesSearch(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters []func(T) bool) bool {
	for _, pred := range filters {
		if !pred(item) {
			return false
		}
	}
	return true
}
