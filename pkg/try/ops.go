package try

// Map transforms the successful value (In -> Out), passing failures through.
func Map[In, Out any](input Result[In], onSuccess func(v In) Out) Result[Out] {
	if input.IsSuccess() {
		return Success(onSuccess(input.Value()))
	}
	return Fail[Out](input.Err())
}

// Then switches to a new Result via a function that already returns one.
func Then[In, Out any](input Result[In], onSuccess func(v In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return Fail[Out](input.Err())
}

// Try calls a conventional (Out, error) function on success, converting a
// returned error to a failure.
func Try[In, Out any](input Result[In], onSuccess func(v In) (Out, error)) Result[Out] {
	if input.IsSuccess() {
		out, err := onSuccess(input.Value())
		if err != nil {
			return Fail[Out](err)
		}
		return Success(out)
	}
	return Fail[Out](input.Err())
}

// Tee runs a side effect on success without changing the result.
func Tee[T any](input Result[T], onSuccess func(v T)) Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// Finally collapses a Result into a final value via the two handlers.
func Finally[In, Out any](input Result[In], onSuccess func(v In) Out, onFailure func(err error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}
