// Live derived views. Each owns exactly one parent and reaches the store
// only through the parent's Len/Get/Set, so they compose without limit.

package seq

// mapView applies forward on read and backward (if any) on write.
type mapView[T, U any] struct {
	parent   View[T]
	forward  func(T, int) U
	backward func(U, int) T
}

func (m *mapView[T, U]) Len() int { return m.parent.Len() }

func (m *mapView[T, U]) Get(i int) (U, error) {
	v, err := m.parent.Get(i)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.forward(v, i), nil
}

func (m *mapView[T, U]) Set(i int, v U) error {
	if m.backward == nil {
		return indexError(ErrReadOnlyMap, i, -1)
	}
	return m.parent.Set(i, m.backward(v, i))
}

// MapLive returns a view over parent whose element i is forward(parent[i], i).
// With a non-nil backward, writing v at i stores backward(v, i) in the parent;
// without it every write fails with ErrReadOnlyMap. Panics on nil forward.
func MapLive[T, U any](parent View[T], forward func(T, int) U, backward func(U, int) T) *Seq[U] {
	if forward == nil {
		panic("seq: MapLive with nil forward")
	}
	return &Seq[U]{v: &mapView[T, U]{parent: parent, forward: forward, backward: backward}}
}

// MapLive is the same-type form of the package-level MapLive.
func (s *Seq[T]) MapLive(forward, backward func(T, int) T) *Seq[T] {
	return MapLive[T, T](s.v, forward, backward)
}

// windowView exposes parent[start : start+size] with indices rebased to 0.
// Bounds are frozen when the window is built.
type windowView[T any] struct {
	parent View[T]
	start  int
	size   int
}

func (w *windowView[T]) Len() int { return w.size }

func (w *windowView[T]) Get(i int) (T, error) {
	if i < 0 || i >= w.size {
		var zero T
		return zero, indexError(ErrRange, i, w.size)
	}
	return w.parent.Get(i + w.start)
}

func (w *windowView[T]) Set(i int, v T) error {
	if i < 0 || i >= w.size {
		return indexError(ErrRange, i, w.size)
	}
	return w.parent.Set(i+w.start, v)
}

// SliceLive returns a fixed-size live window over [start, end) of s.
//
// A negative end counts from the end of s. The parent length is read once,
// here; later growth or shrinkage of s does not move or resize the window.
// A window whose end precedes its start is empty.
func (s *Seq[T]) SliceLive(start, end int) *Seq[T] {
	return s.window(start, end, s.v.Len())
}

// SliceLiveFrom is SliceLive(start, Len()).
func (s *Seq[T]) SliceLiveFrom(start int) *Seq[T] {
	n := s.v.Len()
	return s.window(start, n, n)
}

func (s *Seq[T]) window(start, end, n int) *Seq[T] {
	if end < 0 {
		end += n
	}
	return &Seq[T]{v: &windowView[T]{parent: s.v, start: start, size: max(end-start, 0)}}
}

// reverseView mirrors indices against the parent's current length.
type reverseView[T any] struct {
	parent View[T]
}

func (r *reverseView[T]) Len() int { return r.parent.Len() }

func (r *reverseView[T]) Get(i int) (T, error) {
	return r.parent.Get(r.parent.Len() - 1 - i)
}

func (r *reverseView[T]) Set(i int, v T) error {
	return r.parent.Set(r.parent.Len()-1-i, v)
}

// ReverseLive returns a view reading s back to front. Unlike SliceLive the
// length is re-read on every access, so the view tracks growth and shrinkage.
func (s *Seq[T]) ReverseLive() *Seq[T] {
	return &Seq[T]{v: &reverseView[T]{parent: s.v}}
}
