package seq_test

import (
	"errors"

	"github.com/katalvlaran/liveseq/seq"
)

var errBoom = errors.New("boom")

// counter wraps a slice store and counts accessor calls.
type counter struct {
	lens, gets, sets int
}

func (c *counter) view(data *[]int) *seq.Seq[int] {
	return seq.New(seq.Accessors[int]{
		GetLength: func() int { c.lens++; return len(*data) },
		Get: func(i int) (int, error) {
			c.gets++
			if i < 0 || i >= len(*data) {
				return 0, seq.ErrOutOfRange
			}
			return (*data)[i], nil
		},
		Set: func(i int, v int) error {
			c.sets++
			(*data)[i] = v
			return nil
		},
	})
}

// failingAt returns a read-only view of n elements whose Get fails at index bad.
func failingAt(n, bad int) *seq.Seq[int] {
	return seq.New(seq.Accessors[int]{
		GetLength: func() int { return n },
		Get: func(i int) (int, error) {
			if i == bad {
				return 0, errBoom
			}
			return i, nil
		},
	})
}
