package util

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

type Set[T comparable] map[T]struct{}

func NewSet[T comparable]() Set[T] {
	return make(Set[T])
}

func (s Set[T]) Add(item T) error {
	if IsEmpty(item) {
		return fmt.Errorf("cannot add empty value into set")
	}
	s[item] = struct{}{}
	return nil
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Difference returns the items of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := NewSet[T]()
	for item := range s {
		if !other.Contains(item) {
			result[item] = struct{}{}
		}
	}
	return result
}

func (s Set[T]) Values() []T {
	result := make([]T, 0, len(s))
	for item := range s {
		result = append(result, item)
	}
	return result
}

func (s Set[T]) Size() int {
	return len(s)
}

func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

func IsEmpty[T any](val T) bool {
	return reflect.DeepEqual(val, *new(T))
}

// SortedValues returns the set's items in ascending order.
func SortedValues[T cmp.Ordered](s Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
