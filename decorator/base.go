package decorator

var _ Component = (*Base)(nil)

// Base is the terminal component of a chain, it renders a fixed payload.
type Base struct {
	node
	payload string
}

// NewBase returns a Base rendering payload. The caller owns it until it is wrapped.
func NewBase(payload string, opts ...Option) *Base {
	return newBase(payload, newOption(opts...))
}

func newBase(payload string, o *option) *Base {
	return &Base{node: newNode(baseName, o), payload: payload}
}

func (b *Base) Payload() string {
	return b.payload
}

// Render returns the payload verbatim.
func (b *Base) Render() string {
	b.mustBeLive()
	return b.payload
}

// Release fails with ErrOwned while b is wrapped by a Decorator.
func (b *Base) Release() error {
	if b.owned {
		return ErrOwned
	}
	return b.releaseOwned()
}

func (b *Base) releaseOwned() error {
	if b.released {
		return ErrReleased
	}
	b.release()
	return nil
}
