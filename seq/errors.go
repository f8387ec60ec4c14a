// SPDX-License-Identifier: MIT
// Package: liveseq/seq
//
// errors.go — sentinel errors for view construction and access.
//
// Contract:
//   • Every error raised by this package matches one of the sentinels below
//     under errors.Is, even when index context has been attached.
//   • Errors returned by user accessors are never wrapped or translated.

package seq

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrImmutableWrite indicates Set on a view built without a setter.
	ErrImmutableWrite = errors.New("seq: view is immutable")

	// ErrReadOnlyMap indicates Set on a mapped view built without a backward function.
	// It also matches ErrImmutableWrite under errors.Is.
	ErrReadOnlyMap error = &readOnlyMapError{}

	// ErrRange indicates an index outside the fixed bounds of a window view.
	ErrRange = errors.New("seq: index outside window")

	// ErrOutOfRange indicates an index with no backing element in a slice store.
	ErrOutOfRange = errors.New("seq: index out of range")
)

type readOnlyMapError struct{}

func (*readOnlyMapError) Error() string { return "seq: mapped view has no backward function" }

// Is lets a read-only map failure be handled as any other immutable write.
func (*readOnlyMapError) Is(target error) bool { return target == ErrImmutableWrite }

// indexError attaches the offending index (and optional bound) to a sentinel.
func indexError(sentinel error, idx, bound int) error {
	if bound < 0 {
		return pkgerrors.Wrapf(sentinel, "index %d", idx)
	}
	return pkgerrors.Wrapf(sentinel, "index %d not in [0, %d)", idx, bound)
}
