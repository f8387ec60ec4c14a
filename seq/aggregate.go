// SPDX-License-Identifier: MIT
// Package: liveseq/seq
//
// aggregate.go — stateless loops over the View contract.
//
// Contract (strict):
//   • Every aggregate reads Len exactly once per call, then walks Get(i).
//     Callers may hand in a GetLength with side effects or cost.
//   • Indices are visited at most once, ascending (LastIndexOf: descending).
//   • The first error from Get aborts the call; no partial result is returned.
//   • Callbacks receive (value, index).

package seq

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultGlue is the separator JoinDefault uses.
const DefaultGlue = ","

// ForEach calls fn for every element in ascending order.
func (s *Seq[T]) ForEach(fn func(v T, i int)) error {
	n := s.v.Len()
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return err
		}
		fn(v, i)
	}
	return nil
}

// Find returns the first element satisfying pred. ok is false when none does.
func (s *Seq[T]) Find(pred func(v T, i int) bool) (found T, ok bool, err error) {
	n := s.v.Len()
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if pred(v, i) {
			return v, true, nil
		}
	}
	return found, false, nil
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (s *Seq[T]) FindIndex(pred func(v T, i int) bool) (int, error) {
	n := s.v.Len()
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return -1, err
		}
		if pred(v, i) {
			return i, nil
		}
	}
	return -1, nil
}

// Some reports whether any element satisfies pred. Stops at the first match.
func (s *Seq[T]) Some(pred func(v T, i int) bool) (bool, error) {
	idx, err := s.FindIndex(pred)
	return idx >= 0, err
}

// Every reports whether all elements satisfy pred. Vacuously true when empty.
func (s *Seq[T]) Every(pred func(v T, i int) bool) (bool, error) {
	idx, err := s.FindIndex(func(v T, i int) bool { return !pred(v, i) })
	return err == nil && idx < 0, err
}

// Join concatenates the fmt.Sprint form of every element, glue in between.
func (s *Seq[T]) Join(glue string) (string, error) {
	n := s.v.Len()
	var b strings.Builder
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(glue)
		}
		b.WriteString(fmt.Sprint(v))
	}
	return b.String(), nil
}

// JoinDefault is Join(DefaultGlue).
func (s *Seq[T]) JoinDefault() (string, error) { return s.Join(DefaultGlue) }

// Filter realizes the elements satisfying pred, in order.
func (s *Seq[T]) Filter(pred func(v T, i int) bool) ([]T, error) {
	n := s.v.Len()
	var out []T
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return nil, err
		}
		if pred(v, i) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Slice realizes [start, end) into a fresh slice. Negative bounds count from
// the end; both are then clamped into [0, Len()].
func (s *Seq[T]) Slice(start, end int) ([]T, error) {
	return s.slice(start, end, s.v.Len())
}

// SliceTo realizes [start, Len()).
func (s *Seq[T]) SliceTo(start int) ([]T, error) {
	n := s.v.Len()
	return s.slice(start, n, n)
}

func (s *Seq[T]) slice(start, end, n int) ([]T, error) {
	start, end = clampBound(start, n), clampBound(end, n)
	if end <= start {
		return []T{}, nil
	}
	out := make([]T, 0, end-start)
	for i := start; i < end; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func clampBound(b, n int) int {
	if b < 0 {
		b += n
	}
	return min(max(b, 0), max(n, 0))
}

// Reduce folds the view with the first element as seed, starting at index 1.
//
// No emptiness check is made: on an empty view the seed read Get(0) is
// delegated to the underlying store, and its outcome (typically an
// ErrOutOfRange error for slice stores) is returned.
func (s *Seq[T]) Reduce(fn func(acc, v T, i int) T) (T, error) {
	n := s.v.Len()
	acc, err := s.v.Get(0)
	if err != nil {
		return acc, err
	}
	for i := 1; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			var zero T
			return zero, err
		}
		acc = fn(acc, v, i)
	}
	return acc, nil
}

// ReduceFrom folds v starting from initial at index 0.
func ReduceFrom[T, A any](v View[T], fn func(acc A, x T, i int) A, initial A) (A, error) {
	n := v.Len()
	acc := initial
	for i := 0; i < n; i++ {
		x, err := v.Get(i)
		if err != nil {
			var zero A
			return zero, err
		}
		acc = fn(acc, x, i)
	}
	return acc, nil
}

// Map realizes fn applied to every element of v. See MapLive for the lazy form.
func Map[T, U any](v View[T], fn func(x T, i int) U) ([]U, error) {
	n := v.Len()
	out := make([]U, 0, max(n, 0))
	for i := 0; i < n; i++ {
		x, err := v.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, fn(x, i))
	}
	return out, nil
}

// Includes reports whether item occurs in v. NaN matches NaN.
func Includes[T comparable](v View[T], item T) (bool, error) {
	n := v.Len()
	for i := 0; i < n; i++ {
		x, err := v.Get(i)
		if err != nil {
			return false, err
		}
		if x == item || (x != x && item != item) {
			return true, nil
		}
	}
	return false, nil
}

// IndexOf returns the first index holding item, or -1. NaN never matches.
func IndexOf[T comparable](v View[T], item T) (int, error) {
	n := v.Len()
	for i := 0; i < n; i++ {
		x, err := v.Get(i)
		if err != nil {
			return -1, err
		}
		if x == item {
			return i, nil
		}
	}
	return -1, nil
}

// LastIndexOf is LastIndexOfFrom(v, item, v.Len()).
//
// The scan starts at Len(), one past the last element. On slice stores that
// first probe reports ErrOutOfRange, which is treated as an empty slot, so
// the observable result is the conventional last index.
func LastIndexOf[T comparable](v View[T], item T) (int, error) {
	return LastIndexOfFrom(v, item, v.Len())
}

// LastIndexOfFrom scans from fromIndex down to 0 inclusive and returns the
// first index holding item, or -1. Len is not read.
//
// A read failing with ErrOutOfRange counts as "no match here". Any other
// error, including ErrRange from a window view, aborts the scan.
func LastIndexOfFrom[T comparable](v View[T], item T, fromIndex int) (int, error) {
	for i := fromIndex; i >= 0; i-- {
		x, err := v.Get(i)
		if errors.Is(err, ErrOutOfRange) {
			continue
		}
		if err != nil {
			return -1, err
		}
		if x == item {
			return i, nil
		}
	}
	return -1, nil
}
