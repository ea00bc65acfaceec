package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/pool"
)

var errBoom = errors.New("boom")

// recorder tracks acquisitions and releases of numbered fake resources.
type recorder struct {
	acquired []int
	released []int
	touched  map[int]bool
}

func newRecorder() *recorder {
	return &recorder{touched: map[int]bool{}}
}

func (r *recorder) acquire(i, failAt int) (int, error) {
	r.touched[i] = true
	if i == failAt {
		return 0, errBoom
	}
	r.acquired = append(r.acquired, i)
	return i, nil
}

func (r *recorder) release(i int) error {
	r.released = append(r.released, i)
	return nil
}

func runSteps(s *Stack, rec *recorder, k, failAt int) error {
	for i := 1; i <= k; i++ {
		i := i
		_, err := Step(s, fmt.Sprintf("s%d", i), KindDeviceBind,
			func() (int, error) { return rec.acquire(i, failAt) },
			rec.release,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func TestRollbackCompleteness(t *testing.T) {
	const k = 5
	for failAt := 1; failAt <= k; failAt++ {
		t.Run(fmt.Sprintf("fail_at_%d", failAt), func(t *testing.T) {
			rec := newRecorder()
			s := New("fake", zerolog.Nop())

			err := runSteps(s, rec, k, failAt)
			require.Error(t, err)
			require.ErrorIs(t, err, errBoom)
			require.ErrorIs(t, err, ErrDeviceBind)

			var se *StepError
			require.ErrorAs(t, err, &se)
			require.Equal(t, fmt.Sprintf("s%d", failAt), se.Step)
			require.Equal(t, "fake", se.Subsystem)

			want := make([]int, 0, failAt-1)
			for i := failAt - 1; i >= 1; i-- {
				want = append(want, i)
			}
			require.Equal(t, want, emptyIfNil(rec.released), "exactly the succeeded steps, newest first")
			for i := failAt + 1; i <= k; i++ {
				require.Falsef(t, rec.touched[i], "step %d must never run", i)
			}
			require.Empty(t, s.Held())
			require.True(t, s.Closed())

			require.NoError(t, s.Close())
			require.Len(t, rec.released, failAt-1, "no step released twice")
		})
	}
}

func emptyIfNil(v []int) []int {
	if len(v) == 0 {
		return []int{}
	}
	return v
}

func TestCloseReleasesAllInReverse(t *testing.T) {
	rec := newRecorder()
	s := New("fake", zerolog.Nop())
	require.NoError(t, runSteps(s, rec, 4, -1))
	require.Equal(t, []string{"s1", "s2", "s3", "s4"}, s.Held())

	require.NoError(t, s.Close())
	require.Equal(t, []int{4, 3, 2, 1}, rec.released)

	require.NoError(t, s.Close())
	require.Equal(t, []int{4, 3, 2, 1}, rec.released, "second close is a no-op")
}

func TestEarlyRelease(t *testing.T) {
	var order []string
	s := New("floor", zerolog.Nop())
	s.Push("surface", func() error { order = append(order, "surface"); return nil })
	s.Push("texture", func() error { order = append(order, "texture"); return nil })

	ok, err := s.Release("surface")
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, []string{"texture"}, s.Held())

	ok, err = s.Release("surface")
	require.False(t, ok)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.Equal(t, []string{"surface", "texture"}, order)
}

func TestResourceReleaseOnce(t *testing.T) {
	calls := 0
	s := New("fake", zerolog.Nop())
	r := s.Push("one", func() error { calls++; return nil })

	require.NoError(t, r.Release())
	require.NoError(t, r.Release())
	require.True(t, r.Released())
	require.NoError(t, s.Close())
	require.Equal(t, 1, calls)
}

func TestNilReleaseIsHeld(t *testing.T) {
	s := New("fake", zerolog.Nop())
	s.Push("memory", nil)
	require.Equal(t, []string{"memory"}, s.Held())
	require.NoError(t, s.Close())
	require.Empty(t, s.Held())
}

func TestReleaseErrorsAreCollected(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	var order []string
	s := New("fake", zerolog.Nop())
	s.Push("a", func() error { order = append(order, "a"); return errA })
	s.Push("b", func() error { order = append(order, "b"); return errB })
	s.Push("c", func() error { order = append(order, "c"); return nil })

	err := s.Fail("d", KindAssetLoad, errBoom)
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, err, ErrAssetLoad)
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.Equal(t, []string{"c", "b", "a"}, order, "a failing release does not stop the others")
}

func TestDo(t *testing.T) {
	released := false
	s := New("fake", zerolog.Nop())
	require.NoError(t, s.Do("window", KindAllocation, func() (func() error, error) {
		return func() error { released = true; return nil }, nil
	}))

	err := s.Do("renderer", KindDeviceBind, func() (func() error, error) {
		return nil, errBoom
	})
	require.ErrorIs(t, err, ErrDeviceBind)
	require.True(t, released)
}

func TestPushAfterClose(t *testing.T) {
	calls := 0
	s := New("fake", zerolog.Nop())
	require.NoError(t, s.Close())
	r := s.Push("late", func() error { calls++; return nil })
	require.True(t, r.Released())
	require.Equal(t, 1, calls)
	require.Empty(t, s.Held())
}

func TestNestedSubsystemFailure(t *testing.T) {
	var order []string
	game := New("game", zerolog.Nop())
	game.Push("world", func() error { order = append(order, "world"); return nil })

	player := New("player", zerolog.Nop())
	player.Push("surface", func() error { order = append(order, "player/surface"); return nil })
	inner := player.Fail("texture", KindDeviceBind, errBoom)

	err := game.Fail("player", KindAllocation, inner)
	require.ErrorIs(t, err, ErrDeviceBind, "the inner kind wins")
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []string{"player/surface", "world"}, order)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"pool_exhausted", fmt.Errorf("spawn: %w", pool.ErrExhausted), KindPoolExhaustion},
		{"pool_capacity", pool.ErrCapacity, KindAllocation},
		{"missing_file", fmt.Errorf("open: %w", fs.ErrNotExist), KindAssetLoad},
		{"step_error", &StepError{Kind: KindDeviceBind, Err: errBoom}, KindDeviceBind},
		{"unknown", errBoom, KindAllocation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Classify(c.err, KindAllocation))
		})
	}
}
