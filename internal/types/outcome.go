package types

// Outcome is the result of a best-effort lookup. It always carries a usable
// Value: either the resolved one or the fallback that replaced it.
type Outcome[T any] struct {
	Value    T
	Resolved bool
	// Cause is the reason the fallback was used. Nil when Resolved.
	Cause error
}

// Resolved wraps a successfully looked up value
func Resolved[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Resolved: true}
}

// Fallback wraps the default value used after a failed lookup
func Fallback[T any](value T, cause error) Outcome[T] {
	return Outcome[T]{Value: value, Cause: cause}
}
