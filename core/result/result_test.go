package result_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/storacha/go-hashsign/core/result"
	"github.com/stretchr/testify/require"
)

func TestMatchResult(t *testing.T) {
	t.Run("MatchResultR1", func(t *testing.T) {
		r1 := result.MatchResultR1(result.Ok[int, any](5), func(o int) int { return o * 2 }, func(x any) int { return 0 })
		require.Equal(t, 10, r1)
		r1 = result.MatchResultR1(result.Error[int](errors.New("bad")), func(o int) int { return o }, func(x error) int { return len(x.Error()) })
		require.Equal(t, 3, r1)
	})
	t.Run("MatchResultR2", func(t *testing.T) {
		r1, r2 := result.MatchResultR2(
			result.Error[int](errors.New("bad")),
			func(o int) (string, error) { return "", nil },
			func(x error) (string, error) { return x.Error(), fmt.Errorf("something: %w", x) },
		)
		require.Equal(t, "bad", r1)
		require.EqualError(t, r2, "something: bad")
	})
}

func TestAndThen(t *testing.T) {
	toString := func(x int) result.Result[string, error] {
		return result.Ok[string, error](fmt.Sprintf("%d", x))
	}
	require.Equal(t, result.Ok[string, error]("10"), result.AndThen(result.Ok[int, error](10), toString))

	bad := errors.New("bad")
	require.Equal(t, result.Error[string](bad), result.AndThen(result.Error[int](bad), toString))
}

func TestWrapUnwrap(t *testing.T) {
	v, err := result.Unwrap(result.Wrap(42, nil))
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = result.Unwrap(result.Wrap(0, errors.New("bad")))
	require.EqualError(t, err, "bad")
}
