package result

// Result is the outcome of an operation that either succeeded with a value of
// type O or failed with a value of type X.
type Result[O any, X any] interface {
	Ok() O
	Error() X
}

type result[O any, X any] struct {
	ok    O
	err   X
	isErr bool
}

func (r result[O, X]) Ok() O {
	return r.ok
}

func (r result[O, X]) Error() X {
	return r.err
}

// Ok creates a successful result.
func Ok[O any, X any](value O) Result[O, X] {
	return result[O, X]{ok: value}
}

// Error creates a failed result.
func Error[O any, X any](value X) Result[O, X] {
	return result[O, X]{err: value, isErr: true}
}

// failed reports whether r carries an error. Results created outside this
// package are considered failed when their error value is non-nil.
func failed[O, X any](r Result[O, X]) bool {
	if res, ok := r.(result[O, X]); ok {
		return res.isErr
	}
	return any(r.Error()) != nil
}

// MatchResultR1 calls onOk or onError depending on the outcome and returns
// what the handler returns.
func MatchResultR1[O, X, R1 any](r Result[O, X], onOk func(O) R1, onError func(X) R1) R1 {
	if failed(r) {
		return onError(r.Error())
	}
	return onOk(r.Ok())
}

// MatchResultR2 is MatchResultR1 for handlers returning two values.
func MatchResultR2[O, X, R1, R2 any](r Result[O, X], onOk func(O) (R1, R2), onError func(X) (R1, R2)) (R1, R2) {
	if failed(r) {
		return onError(r.Error())
	}
	return onOk(r.Ok())
}

// AndThen chains an operation onto a successful result.
func AndThen[O, O2, X any](r Result[O, X], fn func(O) Result[O2, X]) Result[O2, X] {
	return MatchResultR1(r, fn, func(x X) Result[O2, X] {
		return Error[O2](x)
	})
}

// Unwrap converts a result with an error failure into Go's usual pair of
// return values.
func Unwrap[O any](r Result[O, error]) (O, error) {
	return MatchResultR2(r, func(o O) (O, error) {
		return o, nil
	}, func(err error) (O, error) {
		var o O
		return o, err
	})
}

// Wrap converts a value/error pair into a result.
func Wrap[O any](value O, err error) Result[O, error] {
	if err != nil {
		return Error[O](err)
	}
	return Ok[O, error](value)
}
