package service

// Opt carries a field value together with whether the caller supplied it at
// all. Update operations use it to tell an absent field (leave unchanged)
// apart from one explicitly set, including set to its zero value. For
// clearable fields the element type is itself a pointer, so Opt[*T]{Set:
// true, Value: nil} means "clear".
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some wraps a supplied value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}
