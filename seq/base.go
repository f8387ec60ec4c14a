package seq

// baseView is the leaf of every chain: it forwards to caller-supplied accessors.
type baseView[T any] struct {
	length func() int
	get    func(int) (T, error)
	set    func(int, T) error
}

func (b *baseView[T]) Len() int { return b.length() }

func (b *baseView[T]) Get(i int) (T, error) { return b.get(i) }

func (b *baseView[T]) Set(i int, v T) error {
	if b.set == nil {
		return indexError(ErrImmutableWrite, i, -1)
	}
	return b.set(i, v)
}

// New builds a Base View from an explicit accessor record.
// Panics if GetLength or Get is nil.
func New[T any](acc Accessors[T]) *Seq[T] {
	if acc.GetLength == nil {
		panic("seq: New with nil GetLength")
	}
	if acc.Get == nil {
		panic("seq: New with nil Get")
	}
	return &Seq[T]{v: &baseView[T]{length: acc.GetLength, get: acc.Get, set: acc.Set}}
}

// FromSlice builds a writable Base View over the slice *s.
//
// The pointer is kept, not the slice header, so the owner may re-slice or
// append and the view observes the new length immediately. Indices with no
// backing element yield an error matching ErrOutOfRange.
func FromSlice[T any](s *[]T) *Seq[T] {
	if s == nil {
		panic("seq: FromSlice(nil)")
	}
	return New(Accessors[T]{
		GetLength: func() int { return len(*s) },
		Get: func(i int) (T, error) {
			if i < 0 || i >= len(*s) {
				var zero T
				return zero, indexError(ErrOutOfRange, i, len(*s))
			}
			return (*s)[i], nil
		},
		Set: func(i int, v T) error {
			if i < 0 || i >= len(*s) {
				return indexError(ErrOutOfRange, i, len(*s))
			}
			(*s)[i] = v
			return nil
		},
	})
}

// FromSliceMapped is FromSlice immediately composed with MapLive.
// A nil backward yields a read-only mapping.
func FromSliceMapped[T, U any](s *[]T, forward func(T, int) U, backward func(U, int) T) *Seq[U] {
	return MapLive[T, U](FromSlice(s), forward, backward)
}

// Wrap returns a facade over an arbitrary View. A *Seq is returned as is.
func Wrap[T any](v View[T]) *Seq[T] {
	if s, ok := v.(*Seq[T]); ok {
		return s
	}
	if v == nil {
		panic("seq: Wrap(nil)")
	}
	return &Seq[T]{v: v}
}
