package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Schema maps an entity's filterable field names to typed match rules. API
// callers address fields by plain string name, so comparison semantics hang
// off the field registration: numeric identifiers compare by exact value,
// enumerated fields by case-insensitive name, everything else by
// case-insensitive substring containment. Built once per entity type.
type Schema[T any] struct {
	entity string
	rules  map[string]rule[T]
}

type matchKind int

const (
	matchExactInt matchKind = iota
	matchExactEnum
	matchSubstring
)

type rule[T any] struct {
	kind      matchKind
	intOf     func(T) int64
	strOf     func(T) string
	enumOf    func(T) int
	parseEnum func(string) (int, error)
}

func NewSchema[T any](entity string) *Schema[T] {
	return &Schema[T]{entity: entity, rules: make(map[string]rule[T])}
}

// Int registers an exact-equality integer field (the "...ID" fields).
func (s *Schema[T]) Int(name string, get func(T) int64) *Schema[T] {
	s.rules[strings.ToLower(name)] = rule[T]{kind: matchExactInt, intOf: get}
	return s
}

// String registers a substring-matched text field. Hash identifiers and
// OAuth identifiers belong here despite the "ID" in their names.
func (s *Schema[T]) String(name string, get func(T) string) *Schema[T] {
	s.rules[strings.ToLower(name)] = rule[T]{kind: matchSubstring, strOf: get}
	return s
}

// Enum registers an exact-equality enumerated field (status, role). parse
// must reject unknown names.
func (s *Schema[T]) Enum(name string, get func(T) int, parse func(string) (int, error)) *Schema[T] {
	s.rules[strings.ToLower(name)] = rule[T]{kind: matchExactEnum, enumOf: get, parseEnum: parse}
	return s
}

// Match builds a predicate testing entity instances against a raw filter
// value. Field names are matched case-insensitively.
func (s *Schema[T]) Match(field, value string) (func(T) bool, error) {
	r, ok := s.rules[strings.ToLower(field)]
	if !ok {
		return nil, fmt.Errorf("%s has no filterable field %q: %w", s.entity, field, ErrFieldNotFound)
	}

	switch r.kind {
	case matchExactInt:
		want, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s.%s expects an integer, got %q: %w", s.entity, field, value, ErrInvalidArgument)
		}
		return func(item T) bool { return r.intOf(item) == want }, nil

	case matchExactEnum:
		want, err := r.parseEnum(value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %v: %w", s.entity, field, err, ErrInvalidArgument)
		}
		return func(item T) bool { return r.enumOf(item) == want }, nil

	default:
		want := strings.ToLower(value)
		return func(item T) bool {
			return strings.Contains(strings.ToLower(r.strOf(item)), want)
		}, nil
	}
}
