package seq_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/liveseq/seq"
)

// CacheSuite drives a cache view over a counting store.
type CacheSuite struct {
	suite.Suite
	data []int
	c    *counter
	now  time.Time
}

func (s *CacheSuite) SetupTest() {
	s.data = []int{1, 1, 2, 3, 5, 8, 13}
	s.c = &counter{}
	s.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (s *CacheSuite) clock() time.Time { return s.now }

func (s *CacheSuite) get(v *seq.Seq[int], i int) int {
	got, err := v.Get(i)
	require.NoError(s.T(), err)
	return got
}

func (s *CacheSuite) TestMemoizesWithoutInvalidator() {
	v := s.c.view(&s.data).WithCache()

	require.Equal(s.T(), 5, s.get(v, 4))
	require.Equal(s.T(), 1, s.c.gets, "first read hits the store")

	s.data[4] = 50
	require.Equal(s.T(), 5, s.get(v, 4), "second read served from cache")
	require.Equal(s.T(), 1, s.c.gets)
}

func (s *CacheSuite) TestWriteRefreshesEntry() {
	v := s.c.view(&s.data).WithCache()
	s.get(v, 2)

	require.NoError(s.T(), v.Set(2, 20))
	require.Equal(s.T(), 20, s.data[2], "write goes through to the store")
	require.Equal(s.T(), 20, s.get(v, 2))
	require.Equal(s.T(), 1, s.c.gets, "read after write served from cache")
}

func (s *CacheSuite) TestInvalidatorSet() {
	invalid := map[int]bool{}
	v := s.c.view(&s.data).WithCache(seq.WithInvalidator[int](func(info seq.CacheInfo[int]) bool {
		return invalid[info.Index]
	}))

	s.get(v, 4)
	require.Equal(s.T(), 1, s.c.gets)
	s.get(v, 4)
	require.Equal(s.T(), 1, s.c.gets, "hit before the index is marked")

	invalid[4] = true
	s.data[4] = 55
	require.Equal(s.T(), 55, s.get(v, 4))
	require.Equal(s.T(), 2, s.c.gets, "miss after the index is marked")
}

func (s *CacheSuite) TestInvalidatorInfo() {
	var seen []seq.CacheInfo[int]
	v := s.c.view(&s.data).WithCache(
		seq.WithClock[int](s.clock),
		seq.WithInvalidator[int](func(info seq.CacheInfo[int]) bool {
			seen = append(seen, info)
			return false
		}),
	)

	s.get(v, 6)
	s.get(v, 3)
	require.Empty(s.T(), seen, "invalidator only consulted for existing entries")

	s.now = s.now.Add(1500 * time.Millisecond)
	s.get(v, 6)
	require.Len(s.T(), seen, 1)
	assert.Equal(s.T(), 13, seen[0].Value)
	assert.Equal(s.T(), 6, seen[0].Index)
	assert.Equal(s.T(), 2, seen[0].CacheCount)
	assert.Equal(s.T(), int64(1500), seen[0].AgeMs())
}

func (s *CacheSuite) TestWriteBypassesInvalidator() {
	calls := 0
	v := s.c.view(&s.data).WithCache(seq.WithInvalidator[int](func(seq.CacheInfo[int]) bool {
		calls++
		return false
	}))

	require.NoError(s.T(), v.Set(0, 7))
	require.Equal(s.T(), 0, calls)
	require.Equal(s.T(), 7, s.get(v, 0))
	require.Equal(s.T(), 1, calls)
	require.Equal(s.T(), 0, s.c.gets)
}

func (s *CacheSuite) TestMaxAge() {
	v := s.c.view(&s.data).WithCache(
		seq.WithClock[int](s.clock),
		seq.WithInvalidator(seq.MaxAge[int](time.Second)),
	)

	s.get(v, 1)
	s.now = s.now.Add(time.Second)
	s.get(v, 1)
	require.Equal(s.T(), 1, s.c.gets, "age equal to the limit is still fresh")

	s.now = s.now.Add(time.Millisecond)
	s.get(v, 1)
	require.Equal(s.T(), 2, s.c.gets)
	s.get(v, 1)
	require.Equal(s.T(), 2, s.c.gets, "recomputed entry restarts its age")
}

func (s *CacheSuite) TestMaxEntries() {
	v := s.c.view(&s.data).WithCache(seq.WithInvalidator(seq.MaxEntries[int](2)))

	s.get(v, 0)
	s.get(v, 1)
	s.get(v, 0)
	require.Equal(s.T(), 2, s.c.gets, "at the limit entries are still served")

	s.get(v, 2)
	require.Equal(s.T(), 3, s.c.gets)
	s.data[0] = 100
	require.Equal(s.T(), 100, s.get(v, 0), "over the limit the entry is recomputed")
	require.Equal(s.T(), 4, s.c.gets)
}

func (s *CacheSuite) TestAnyOf() {
	stale := false
	v := s.c.view(&s.data).WithCache(
		seq.WithClock[int](s.clock),
		seq.WithInvalidator(seq.AnyOf(
			seq.MaxAge[int](time.Minute),
			func(seq.CacheInfo[int]) bool { return stale },
		)),
	)

	s.get(v, 0)
	s.get(v, 0)
	require.Equal(s.T(), 1, s.c.gets)
	stale = true
	s.get(v, 0)
	require.Equal(s.T(), 2, s.c.gets)
}

func (s *CacheSuite) TestLengthNeverCached() {
	v := s.c.view(&s.data).WithCache()
	v.Len()
	v.Len()
	require.Equal(s.T(), 2, s.c.lens)

	s.data = append(s.data, 21)
	require.Equal(s.T(), 8, v.Len())
}

func (s *CacheSuite) TestParentErrorsNotCached() {
	fail := true
	v := seq.New(seq.Accessors[int]{
		GetLength: func() int { return 1 },
		Get: func(int) (int, error) {
			if fail {
				return 0, errBoom
			}
			return 3, nil
		},
		Set: func(int, int) error { return errBoom },
	}).WithCache()

	_, err := v.Get(0)
	require.ErrorIs(s.T(), err, errBoom)
	fail = false
	require.Equal(s.T(), 3, s.get(v, 0))

	require.ErrorIs(s.T(), v.Set(0, 9), errBoom)
	require.Equal(s.T(), 3, s.get(v, 0), "failed write leaves the entry alone")
}

func (s *CacheSuite) TestImmutableParent() {
	v := failingAt(3, -1).WithCache()
	require.ErrorIs(s.T(), v.Set(0, 1), seq.ErrImmutableWrite)
}

func (s *CacheSuite) TestLogger() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	v := s.c.view(&s.data).WithCache(
		seq.WithCacheLogger[int](logger),
		seq.WithInvalidator[int](func(seq.CacheInfo[int]) bool { return true }),
	)

	s.get(v, 0)
	s.get(v, 0)
	out := buf.String()
	assert.Contains(s.T(), out, `"message":"cache miss"`)
	assert.Contains(s.T(), out, `"message":"cache entry invalidated"`)
	assert.Contains(s.T(), out, `"index":0`)
}

func (s *CacheSuite) TestObserver() {
	obs := &recordingObserver{}
	v := s.c.view(&s.data).WithCache(seq.WithObserver[int](obs))

	s.get(v, 1)
	s.get(v, 1)
	require.NoError(s.T(), v.Set(1, 4))
	assert.Equal(s.T(), []string{"miss:1", "hit:1", "write:1"}, obs.events)
}

func (s *CacheSuite) TestOptionValidation() {
	assert.Panics(s.T(), func() { seq.WithInvalidator[int](nil) })
	assert.Panics(s.T(), func() { seq.WithClock[int](nil) })
	assert.Panics(s.T(), func() { seq.WithObserver[int](nil) })
	assert.Panics(s.T(), func() { seq.MaxAge[int](-time.Second) })
	assert.Panics(s.T(), func() { seq.MaxEntries[int](-1) })
	assert.NotPanics(s.T(), func() { seq.MaxEntries[int](0) })
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

type recordingObserver struct{ events []string }

func (r *recordingObserver) CacheHit(i int)         { r.record("hit", i) }
func (r *recordingObserver) CacheMiss(i int)        { r.record("miss", i) }
func (r *recordingObserver) CacheInvalidated(i int) { r.record("invalidated", i) }
func (r *recordingObserver) CacheWrite(i int)       { r.record("write", i) }

func (r *recordingObserver) record(kind string, i int) {
	r.events = append(r.events, kind+":"+strconv.Itoa(i))
}
