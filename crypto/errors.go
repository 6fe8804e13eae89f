package crypto

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/storacha/go-hashsign/core/result/failure"
)

// ErrAborted is the failure of a sink aborted without a reason.
var ErrAborted = errors.New("sink aborted")

type InvalidAlgorithmError struct {
	failure.NamedWithStackTrace
	algorithm string
	available []string
}

func NewInvalidAlgorithmError(algorithm string, available []string) error {
	return InvalidAlgorithmError{failure.NamedWithCurrentStackTrace("InvalidAlgorithm"), algorithm, slices.Clone(available)}
}

func (iae InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("invalid algorithm; available algorithms are [ '%s' ]", strings.Join(iae.available, "', '"))
}

// Algorithm is the name that was rejected.
func (iae InvalidAlgorithmError) Algorithm() string {
	return iae.algorithm
}

func (iae InvalidAlgorithmError) Available() []string {
	return slices.Clone(iae.available)
}

// ProviderResolutionError reports that no provider could be loaded.
type ProviderResolutionError struct {
	failure.NamedWithStackTrace
	cause error
}

func NewProviderResolutionError(cause error) error {
	return ProviderResolutionError{failure.NamedWithCurrentStackTrace("ProviderResolutionFailure"), cause}
}

func (pre ProviderResolutionError) Error() string {
	return fmt.Sprintf("resolving crypto provider: %s", pre.cause.Error())
}

func (pre ProviderResolutionError) Unwrap() error {
	return pre.cause
}

// EngineError reports a failure inside a digest or signature computation.
type EngineError struct {
	failure.NamedWithStackTrace
	algorithm string
	cause     error
}

func NewEngineError(algorithm string, cause error) error {
	return EngineError{failure.NamedWithCurrentStackTrace("EngineFailure"), algorithm, cause}
}

func (ee EngineError) Error() string {
	return fmt.Sprintf("%s engine: %s", ee.algorithm, ee.cause.Error())
}

func (ee EngineError) Unwrap() error {
	return ee.cause
}
