package failure

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testError struct {
	NamedWithStackTrace
}

func newTestError() error {
	return testError{NamedWithCurrentStackTrace("TestError")}
}

func (testError) Error() string { return "something went wrong" }

func TestNamedWithCurrentStackTrace(t *testing.T) {
	err := newTestError()
	var te testError
	require.True(t, errors.As(err, &te))
	require.Equal(t, "TestError", te.Name())
	// the constructor is skipped, the test function is the first frame
	require.True(t, strings.Contains(te.Stack(), "TestNamedWithCurrentStackTrace"), te.Stack())
}

func TestFromError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		cause := errors.New("boom")
		f := FromError(cause)
		require.Equal(t, "Error", f.Name())
		require.Equal(t, "boom", f.Error())
		require.ErrorIs(t, f, cause)
	})

	t.Run("named error", func(t *testing.T) {
		f := FromError(fmt.Errorf("wrapped: %w", newTestError()))
		require.Equal(t, "TestError", f.Name())
	})
}

func TestNameOf(t *testing.T) {
	require.Equal(t, "TestError", NameOf(fmt.Errorf("wrapped: %w", newTestError())))
	require.Equal(t, "", NameOf(errors.New("plain")))
}
