// Package seq provides live, index-addressable views over data that is
// computed on demand rather than stored.
//
// 🚀 What is a view?
//
//	A view behaves like a fixed-length slice — Len, Get, Set, iteration and
//	the usual aggregates — but every element access is a call into accessor
//	functions you supply. Nothing is copied. Mutate the backing store and
//	every view over it sees the change on the next read.
//
// ✨ Composition:
//
//	Base View   — New(Accessors{...}) or FromSlice(&s); the leaf of a chain
//	MapLive     — forward on read, optional backward on write
//	SliceLive   — fixed window [start, end), bounds frozen at construction
//	ReverseLive — back-to-front, length re-read on every access
//	WithCache   — per-index memoization with an optional Invalidator
//
//	Each derived view wraps exactly one parent and talks to it only through
//	Len/Get/Set, so any chain is legal:
//
//	  s := []int{1, 2, 3, 5, 8, 13, 21, 34}
//	  v := seq.FromSlice(&s).SliceLive(2, 7).ReverseLive().WithCache()
//	  _ = v.Set(0, 100) // writes s[6]
//
// ⚙️ Length discipline:
//
//	Every aggregate (ForEach, Find, FindIndex, Some, Every, Join, Filter,
//	Slice, Reduce, Map, ReduceFrom, Includes, IndexOf, LastIndexOf) and
//	every traversal via Values reads Len exactly once. Len itself is never
//	cached, not even by WithCache.
//
// Indexing:
//
//	Get passes negative indices through untouched; At(-1) is the last
//	element. Go has no index operator overloading, so bracket access is
//	spelled Get/Set.
//
// Errors:
//
//	ErrImmutableWrite - Set on a view built without a setter.
//	ErrReadOnlyMap    - Set on a MapLive view without backward (also ErrImmutableWrite).
//	ErrRange          - window view index outside [0, Len()).
//	ErrOutOfRange     - slice store index with no element.
//
// Errors from user accessors are returned exactly as produced.
//
// Concurrency: none. Views are not safe for concurrent use and the backing
// store is shared by reference without locking.
package seq
