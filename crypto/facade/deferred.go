package facade

import (
	"sync"

	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/future"
	"github.com/storacha/go-hashsign/core/result"
	"github.com/storacha/go-hashsign/crypto"
)

// binding is Pending until its target settles and Resolved afterwards.
// Pending calls are queued on the target; Resolved calls go straight to it.
type binding[T any] struct {
	target *future.Future[T]
}

// resolved returns the target once it has settled successfully.
func (b binding[T]) resolved() (T, bool) {
	r, ok := b.target.Result()
	if !ok {
		var zero T
		return zero, false
	}
	t, err := result.Unwrap(r)
	return t, err == nil
}

// call runs fn against the target when it is ready. A failed target fails
// the returned future with the same error.
func call[T, U any](b binding[T], fn func(T) *future.Future[U]) *future.Future[U] {
	if t, ok := b.resolved(); ok {
		return fn(t)
	}
	out := future.New[U]()
	b.target.OnSettle(func(t T, err error) {
		if err != nil {
			out.Reject(err)
			return
		}
		future.Pipe(fn(t), out)
	})
	return out
}

type deferredHash struct {
	algorithm string
	target    binding[crypto.HashFunction]
}

func (d *deferredHash) Algorithm() string {
	return d.algorithm
}

func (d *deferredHash) Hash(data crypto.Data, c codec.Codec) *future.Future[[]byte] {
	return call(d.target, func(fn crypto.HashFunction) *future.Future[[]byte] {
		return fn.Hash(data, c)
	})
}

func (d *deferredHash) Create(c codec.Codec) crypto.Hasher {
	if fn, ok := d.target.resolved(); ok {
		return fn.Create(c)
	}
	s := newDeferredSink()
	d.target.target.OnSettle(func(fn crypto.HashFunction, err error) {
		if err != nil {
			s.fail(err)
			return
		}
		h := fn.Create(c)
		s.bind(h, h.Digest())
	})
	return deferredHasher{s}
}

type deferredSign struct {
	algorithm string
	target    binding[crypto.SignFunction]
}

func (d *deferredSign) Algorithm() string {
	return d.algorithm
}

func (d *deferredSign) Sign(key crypto.Key, data crypto.Data, c codec.Codec) *future.Future[[]byte] {
	return call(d.target, func(fn crypto.SignFunction) *future.Future[[]byte] {
		return fn.Sign(key, data, c)
	})
}

func (d *deferredSign) Create(key crypto.Key, c codec.Codec) crypto.Signer {
	if fn, ok := d.target.resolved(); ok {
		return fn.Create(key, c)
	}
	s := newDeferredSink()
	d.target.target.OnSettle(func(fn crypto.SignFunction, err error) {
		if err != nil {
			s.fail(err)
			return
		}
		signer := fn.Create(key, c)
		s.bind(signer, signer.Signature())
	})
	return deferredSigner{s}
}

// deferredSink queues sink calls until a real sink exists, then replays
// them in order and forwards everything after.
type deferredSink struct {
	mu      sync.Mutex
	target  crypto.Sink
	queue   []func(crypto.Sink)
	closed  bool
	aborted bool
	err     error
	result  *future.Future[[]byte]
}

func newDeferredSink() *deferredSink {
	return &deferredSink{result: future.New[[]byte]()}
}

// enqueue returns the real sink if there is one. Otherwise op is queued and
// a nil sink is returned. Nothing is queued once closed, aborted or failed.
func (s *deferredSink) enqueue(op func(crypto.Sink)) (crypto.Sink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target != nil {
		return s.target, nil
	}
	if s.closed || s.aborted {
		return nil, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	s.queue = append(s.queue, op)
	return nil, nil
}

func (s *deferredSink) bind(target crypto.Sink, result *future.Future[[]byte]) {
	future.Pipe(result, s.result)
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.target = target
			s.mu.Unlock()
			return
		}
		ops := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, op := range ops {
			op(target)
		}
	}
}

func (s *deferredSink) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.queue = nil
	s.mu.Unlock()
	s.result.Reject(err)
}

func (s *deferredSink) Start(onError func(error)) error {
	t, err := s.enqueue(func(t crypto.Sink) { t.Start(onError) })
	if t != nil {
		return t.Start(onError)
	}
	return err
}

func (s *deferredSink) Write(chunk crypto.Data) error {
	t, err := s.enqueue(func(t crypto.Sink) { t.Write(chunk) })
	if t != nil {
		return t.Write(chunk)
	}
	return err
}

func (s *deferredSink) Close() error {
	s.mu.Lock()
	if t := s.target; t != nil {
		s.mu.Unlock()
		return t.Close()
	}
	defer s.mu.Unlock()
	if s.closed || s.aborted {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	s.queue = append(s.queue, func(t crypto.Sink) { t.Close() })
	s.closed = true
	return nil
}

// Abort fails the result right away, even before the real sink exists. The
// abort is still forwarded once it does. A queued close is terminal, so an
// abort after it changes nothing.
func (s *deferredSink) Abort(reason error) error {
	s.mu.Lock()
	if t := s.target; t != nil {
		s.mu.Unlock()
		return t.Abort(reason)
	}
	if s.err != nil || s.closed || s.aborted {
		s.mu.Unlock()
		return nil
	}
	s.queue = append(s.queue, func(t crypto.Sink) { t.Abort(reason) })
	s.aborted = true
	s.mu.Unlock()

	if reason == nil {
		reason = crypto.ErrAborted
	}
	s.result.Reject(reason)
	return nil
}

type deferredHasher struct {
	*deferredSink
}

func (h deferredHasher) Digest() *future.Future[[]byte] {
	return h.result
}

type deferredSigner struct {
	*deferredSink
}

func (s deferredSigner) Signature() *future.Future[[]byte] {
	return s.result
}
