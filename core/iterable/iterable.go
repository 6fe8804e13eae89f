package iterable

import (
	"errors"
	"io"
)

// Iterator returns items in a collection with every call to Next().
// The error will be set to io.EOF when the iterator is complete.
type Iterator[T any] interface {
	Next() (T, error)
}

type iterator[T any] struct {
	next func() (T, error)
}

func (it *iterator[T]) Next() (T, error) {
	return it.next()
}

func NewIterator[T any](next func() (T, error)) Iterator[T] {
	return &iterator[T]{next}
}

// Chunks reads r in chunks of at most size bytes. Each chunk is a fresh
// slice. A read error other than io.EOF is returned once the data read
// before it has been delivered.
func Chunks(r io.Reader, size int) Iterator[[]byte] {
	var failed error
	return NewIterator(func() ([]byte, error) {
		if failed != nil {
			return nil, failed
		}
		buf := make([]byte, size)
		n, err := io.ReadFull(r, buf)
		switch {
		case errors.Is(err, io.ErrUnexpectedEOF):
			failed = io.EOF
		case err != nil:
			failed = err
		}
		if n > 0 {
			return buf[:n], nil
		}
		return nil, failed
	})
}
