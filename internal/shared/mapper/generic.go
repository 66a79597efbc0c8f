// Package mapper holds generic helpers for converting slices between layers.
package mapper

import "fmt"

// Map converts every item with fn. The result is never nil so that an empty
// input still encodes as a JSON array.
func Map[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(items[i])
	}
	return out
}

// TryMap converts every item with fn and stops at the first failure. The
// returned error carries the index of the offending item.
func TryMap[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	for i := range items {
		v, err := fn(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
