package viewstate

import (
	"strings"

	"lexconnect/internal/domain"
)

// All is the sentinel filter value meaning "no restriction" (the UI's
// "Todos" option). An empty string is treated the same way.
const All = "all"

// Predicate narrows a record set. Predicates compose by logical AND and
// are idempotent: applying the same predicate twice yields the result of
// applying it once.
type Predicate[T any] func(T) bool

// And combines predicates; records must satisfy every one.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(r T) bool {
		for _, p := range preds {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

// Apply filters records through pred, returning a fresh slice.
func Apply[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Equals matches records whose field equals want. The sentinel All (or
// an empty selection) matches everything.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if want == "" || want == All {
		return func(T) bool { return true }
	}
	return func(r T) bool { return field(r) == want }
}

// SearchText matches records where any nominated field contains term,
// case-insensitively. An empty term matches everything.
func SearchText[T any](term string, fields ...func(T) string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return func(T) bool { return true }
	}
	return func(r T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), term) {
				return true
			}
		}
		return false
	}
}

// SubtypeChoices returns the subtype names valid for a base-type
// selection. Selecting All offers the union across base types.
func SubtypeChoices(subtypes []domain.CaseSubtype, baseType string) []string {
	out := make([]string, 0, len(subtypes))
	for _, s := range subtypes {
		if baseType == "" || baseType == All || string(s.BaseType) == baseType {
			out = append(out, s.Name)
		}
	}
	return out
}

// NormalizeSubtype keeps a subtype selection only while it remains valid
// for the current base type. A stale selection resets to All rather than
// being silently kept.
func NormalizeSubtype(selected string, choices []string) string {
	if selected == "" || selected == All {
		return All
	}
	for _, c := range choices {
		if c == selected {
			return selected
		}
	}
	return All
}
