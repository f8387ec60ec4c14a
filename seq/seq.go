package seq

import "iter"

// Len reports the current length of the underlying view. Never cached.
func (s *Seq[T]) Len() int { return s.v.Len() }

// Get reads index i as is. Negative indices are passed through unchanged;
// use At for from-the-end addressing.
func (s *Seq[T]) Get(i int) (T, error) { return s.v.Get(i) }

// Set writes v at index i through the view chain.
func (s *Seq[T]) Set(i int, v T) error { return s.v.Set(i, v) }

// View exposes the wrapped view.
func (s *Seq[T]) View() View[T] { return s.v }

// At reads with negative-index support: idx < 0 addresses idx+Len().
// Len is only queried for negative idx.
func (s *Seq[T]) At(idx int) (T, error) {
	if idx < 0 {
		idx += s.v.Len()
	}
	return s.v.Get(idx)
}

// Values returns a restartable, ascending traversal for use with range.
//
// Each traversal reads Len once at the start. If a read fails, the error is
// yielded with the zero value and the traversal stops.
//
//	for v, err := range s.Values() {
//		if err != nil {
//			return err
//		}
//		...
//	}
func (s *Seq[T]) Values() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n := s.v.Len()
		for i := 0; i < n; i++ {
			v, err := s.v.Get(i)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// ToSlice realizes the current contents into a fresh slice (one Len read).
func (s *Seq[T]) ToSlice() ([]T, error) {
	n := s.v.Len()
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		v, err := s.v.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
