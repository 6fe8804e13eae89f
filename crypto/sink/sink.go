// Package sink implements the streaming state machine shared by every
// Hasher and Signer: Ready, Started, then Closed or Aborted.
package sink

import (
	"bytes"
	"io"
	"sync"

	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/future"
	"github.com/storacha/go-hashsign/crypto"
)

type State int

const (
	Ready State = iota
	Started
	Closed
	Aborted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Started:
		return "started"
	case Closed:
		return "closed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == Closed || s == Aborted
}

// Accumulator is the engine side of a sink. Written bytes are handed to it
// and Finish produces the result once.
type Accumulator interface {
	io.Writer
	Finish() ([]byte, error)
}

type buffered struct {
	buf bytes.Buffer
	sum func([]byte) ([]byte, error)
}

// Buffered collects every write and runs sum over the concatenation on
// Finish. It suits engines that only offer a one-shot digest.
func Buffered(sum func([]byte) ([]byte, error)) Accumulator {
	return &buffered{sum: sum}
}

func (b *buffered) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *buffered) Finish() ([]byte, error) {
	return b.sum(b.buf.Bytes())
}

// Sink drives an Accumulator through the streaming states. All methods are
// safe for concurrent use.
type Sink struct {
	mu        sync.Mutex
	algorithm string
	state     State
	codec     codec.Codec
	acc       Accumulator
	onError   func(error)
	result    *future.Future[[]byte]
}

// New creates a sink converting text chunks with c (UTF-8 when nil).
// algorithm names the engine in errors.
func New(algorithm string, c codec.Codec, acc Accumulator) *Sink {
	return &Sink{
		algorithm: algorithm,
		codec:     codec.OrDefault(c),
		acc:       acc,
		result:    future.New[[]byte](),
	}
}

func (s *Sink) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result is settled by Close or Abort.
func (s *Sink) Result() *future.Future[[]byte] {
	return s.result
}

func (s *Sink) Start(onError func(error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Terminal() {
		return nil
	}
	s.onError = onError
	s.state = Started
	return nil
}

// Write appends chunk. A chunk that cannot be encoded or written fails the
// sink with that error, which is also returned.
func (s *Sink) Write(chunk crypto.Data) error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.state = Started
	b, err := crypto.Encode(chunk, s.codec)
	if err == nil {
		_, err = s.acc.Write(b)
		if err != nil {
			err = crypto.NewEngineError(s.algorithm, err)
		}
	}
	if err == nil {
		s.mu.Unlock()
		return nil
	}
	onError := s.fail()
	s.mu.Unlock()

	s.result.Reject(err)
	if onError != nil {
		onError(err)
	}
	return err
}

func (s *Sink) Close() error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.state = Closed
	sum, err := s.acc.Finish()
	s.acc = nil
	onError := s.onError
	s.mu.Unlock()

	if err != nil {
		err = crypto.NewEngineError(s.algorithm, err)
		s.result.Reject(err)
		if onError != nil {
			onError(err)
		}
		return err
	}
	s.result.Resolve(sum)
	return nil
}

func (s *Sink) Abort(reason error) error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.fail()
	s.mu.Unlock()

	if reason == nil {
		reason = crypto.ErrAborted
	}
	s.result.Reject(reason)
	return nil
}

// fail moves to Aborted and drops the accumulator. Callers hold mu.
func (s *Sink) fail() func(error) {
	s.state = Aborted
	s.acc = nil
	return s.onError
}

type hasher struct {
	*Sink
}

// NewHasher wraps a Sink as a crypto.Hasher.
func NewHasher(algorithm string, c codec.Codec, acc Accumulator) crypto.Hasher {
	return hasher{New(algorithm, c, acc)}
}

func (h hasher) Digest() *future.Future[[]byte] {
	return h.Result()
}

type signer struct {
	*Sink
}

// NewSigner wraps a Sink as a crypto.Signer.
func NewSigner(algorithm string, c codec.Codec, acc Accumulator) crypto.Signer {
	return signer{New(algorithm, c, acc)}
}

func (s signer) Signature() *future.Future[[]byte] {
	return s.Result()
}

// FailedHasher returns a Hasher whose digest is already rejected with err. Every
// method on it is a no-op.
func FailedHasher(algorithm string, err error) crypto.Hasher {
	h := hasher{New(algorithm, nil, nil)}
	h.Abort(err)
	return h
}

// FailedSigner is FailedHasher for signers.
func FailedSigner(algorithm string, err error) crypto.Signer {
	s := signer{New(algorithm, nil, nil)}
	s.Abort(err)
	return s
}
