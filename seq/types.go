package seq

// View is the three-primitive contract shared by every view in a chain.
//
// Len is queried fresh on every call; nothing in this package caches it.
// Get and Set carry no bound checking of their own unless the concrete view
// documents it (window views do, base views delegate to the store).
type View[T any] interface {
	// Len reports the current number of addressable elements.
	Len() int

	// Get returns the element at index i.
	Get(i int) (T, error)

	// Set stores v at index i, or reports why the view cannot be written.
	Set(i int, v T) error
}

// Accessors is the options record a Base View is built from.
//
// GetLength and Get are required. A nil Set makes the resulting view
// immutable: every write fails with ErrImmutableWrite.
type Accessors[T any] struct {
	// GetLength reports the store's current length.
	GetLength func() int

	// Get reads the element at an index. Out-of-range handling is up to the caller.
	Get func(i int) (T, error)

	// Set writes the element at an index (optional).
	Set func(i int, v T) error
}

// Seq is the facade over a View: indexed access, iteration, aggregate
// operations, and the live-view constructors (MapLive, SliceLive,
// ReverseLive, WithCache).
//
// A Seq owns no elements; every call is routed to the wrapped View.
// Seq itself satisfies View, so any Seq can be the parent of another view.
// Not safe for concurrent use.
type Seq[T any] struct {
	v View[T]
}

var _ View[int] = (*Seq[int])(nil)
