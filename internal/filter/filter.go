// Package filter holds the pure filtering and derivation functions behind the
// dashboard's list screens. Nothing here keeps state; every function is
// total over well-formed input.
package filter

import "strings"

// All is the sentinel filter value that disables a predicate.
const All = "all"

// Predicate reports whether a record belongs to the visible subset.
type Predicate[T any] func(T) bool

// Apply returns the records of collection for which every non-nil predicate
// holds, in their original order. A nil predicate is skipped, so a filter set
// to All behaves exactly like a filter that was never given.
func Apply[T any](collection []T, predicates ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(collection))
	for _, rec := range collection {
		if matchesAll(rec, active) {
			out = append(out, rec)
		}
	}

	return out
}

func matchesAll[T any](rec T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(rec) {
			return false
		}
	}
	return true
}

// MatchText builds a case-insensitive substring predicate over the fields
// returned by fields. An empty query yields nil (no predicate).
func MatchText[T any](query string, fields func(T) []string) Predicate[T] {
	if query == "" {
		return nil
	}

	q := strings.ToLower(query)
	return func(rec T) bool {
		for _, f := range fields(rec) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equal builds a predicate comparing key(rec) to want. Passing ok == false
// (the filter is set to All) yields nil.
func Equal[T any, K comparable](want K, ok bool, key func(T) K) Predicate[T] {
	if !ok {
		return nil
	}
	return func(rec T) bool {
		return key(rec) == want
	}
}

func isAll(s string) bool {
	return s == "" || s == All
}
