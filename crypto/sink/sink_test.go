package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/result/failure"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/stretchr/testify/require"
)

func concat(b []byte) ([]byte, error) {
	return append([]byte("sum:"), b...), nil
}

func await(t *testing.T, s *Sink) ([]byte, error) {
	t.Helper()
	require.True(t, s.Result().Settled())
	return s.Result().Await(context.Background())
}

func TestSink(t *testing.T) {
	t.Run("close resolves once", func(t *testing.T) {
		s := New("test", nil, Buffered(concat))
		require.Equal(t, Ready, s.State())
		require.NoError(t, s.Start(nil))
		require.Equal(t, Started, s.State())
		require.NoError(t, s.Write(crypto.Text("ab")))
		require.NoError(t, s.Write(crypto.Bytes([]byte("cd"))))
		require.False(t, s.Result().Settled())
		require.NoError(t, s.Close())
		require.Equal(t, Closed, s.State())

		b, err := await(t, s)
		require.NoError(t, err)
		require.Equal(t, []byte("sum:abcd"), b)

		require.NoError(t, s.Close())
		require.NoError(t, s.Write(crypto.Text("ef")))
		require.NoError(t, s.Abort(errors.New("late")))
		b, err = await(t, s)
		require.NoError(t, err)
		require.Equal(t, []byte("sum:abcd"), b)
	})

	t.Run("write without start", func(t *testing.T) {
		s := New("test", nil, Buffered(concat))
		require.NoError(t, s.Write(crypto.Text("x")))
		require.NoError(t, s.Close())
		b, err := await(t, s)
		require.NoError(t, err)
		require.Equal(t, []byte("sum:x"), b)
	})

	t.Run("text chunks use the codec", func(t *testing.T) {
		s := New("test", codec.Hex, Buffered(concat))
		require.NoError(t, s.Write(crypto.Text("6162")))
		require.NoError(t, s.Write(crypto.Text("63")))
		require.NoError(t, s.Close())
		b, err := await(t, s)
		require.NoError(t, err)
		require.Equal(t, []byte("sum:abc"), b)
	})

	t.Run("abort is idempotent", func(t *testing.T) {
		s := New("test", nil, Buffered(concat))
		reason := errors.New("stop")
		require.NoError(t, s.Start(nil))
		require.NoError(t, s.Write(crypto.Text("ab")))
		require.NoError(t, s.Abort(reason))
		require.Equal(t, Aborted, s.State())

		require.NoError(t, s.Abort(errors.New("again")))
		require.NoError(t, s.Close())
		require.NoError(t, s.Write(crypto.Text("cd")))
		require.NoError(t, s.Start(nil))
		require.Equal(t, Aborted, s.State())

		_, err := await(t, s)
		require.Equal(t, reason, err)
	})

	t.Run("abort without reason", func(t *testing.T) {
		s := New("test", nil, Buffered(concat))
		require.NoError(t, s.Abort(nil))
		_, err := await(t, s)
		require.ErrorIs(t, err, crypto.ErrAborted)
	})

	t.Run("codec error fails the sink", func(t *testing.T) {
		var reported error
		s := New("test", codec.Hex, Buffered(concat))
		require.NoError(t, s.Start(func(err error) { reported = err }))
		err := s.Write(crypto.Text("not hex"))
		require.Error(t, err)
		require.Equal(t, err, reported)
		require.Equal(t, Aborted, s.State())

		_, rerr := await(t, s)
		require.Equal(t, err, rerr)
	})

	t.Run("engine error on close", func(t *testing.T) {
		boom := errors.New("boom")
		var reported error
		s := New("test", nil, Buffered(func([]byte) ([]byte, error) { return nil, boom }))
		require.NoError(t, s.Start(func(err error) { reported = err }))
		err := s.Close()
		require.ErrorIs(t, err, boom)
		require.Equal(t, "EngineFailure", failure.NameOf(err))
		require.Equal(t, err, reported)

		_, rerr := await(t, s)
		require.ErrorIs(t, rerr, boom)
	})
}

func TestWrappers(t *testing.T) {
	h := NewHasher("test", nil, Buffered(concat))
	require.NoError(t, h.Write(crypto.Text("a")))
	require.NoError(t, h.Close())
	b, err := h.Digest().Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("sum:a"), b)

	s := NewSigner("test", nil, Buffered(concat))
	require.NoError(t, s.Close())
	b, err = s.Signature().Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("sum:"), b)

	boom := errors.New("boom")
	fh := FailedHasher("test", boom)
	require.NoError(t, fh.Write(crypto.Text("a")))
	require.NoError(t, fh.Close())
	_, err = fh.Digest().Await(context.Background())
	require.Equal(t, boom, err)

	fs := FailedSigner("test", boom)
	require.NoError(t, fs.Close())
	_, err = fs.Signature().Await(context.Background())
	require.Equal(t, boom, err)
}
