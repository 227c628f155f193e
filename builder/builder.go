package builder

// Builder assembles a T, handing ownership of it to the caller.
type Builder[T any] interface {
	Build() (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Builder.
type Func[T any] func() (T, error)

// Build calls f().
func (f Func[T]) Build() (T, error) {
	return f()
}
