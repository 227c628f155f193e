package decorator

import "fmt"

// Component is a node of a chain that renders accumulated content.
type Component interface {
	// Render produces the content of the component. It has no side effects.
	Render() string

	// Release releases the component and everything it owns, inner components first.
	// Releasing a component twice returns ErrReleased.
	Release() error
}

var _ Component = (*Decorator)(nil)

// Decorator owns exactly one inner Component and transforms its rendered content.
type Decorator struct {
	node
	kind  Kind
	inner Component
}

// New wraps inner with the transform of kind. The Decorator becomes the only owner of inner,
// the caller must not render or release inner afterwards.
//
// New fails with ErrInvalidInner if inner is nil, released or owned by another Decorator,
// and with UnknownAugmentationError if kind is not recognized. On failure inner is left untouched.
func New(kind Kind, inner Component, opts ...Option) (*Decorator, error) {
	return newDecorator(kind, inner, newOption(opts...))
}

func newDecorator(kind Kind, inner Component, o *option) (*Decorator, error) {
	if isNil(inner) {
		return nil, ErrInvalidInner
	}
	if !kind.Valid() {
		return nil, UnknownAugmentationError{Kind: kind}
	}
	if own, ok := inner.(owner); ok {
		if err := own.claim(); err != nil {
			return nil, err
		}
	}
	return &Decorator{node: newNode(kind.String(), o), kind: kind, inner: inner}, nil
}

func (d *Decorator) Kind() Kind {
	return d.kind
}

// Render applies the transform of the kind to the content of the inner component.
func (d *Decorator) Render() string {
	d.mustBeLive()
	return d.kind.Transform().Decorate(d.inner.Render())
}

// Release fails with ErrOwned while d is wrapped by another Decorator.
func (d *Decorator) Release() error {
	if d.owned {
		return ErrOwned
	}
	return d.releaseOwned()
}

func (d *Decorator) releaseOwned() error {
	if d.released {
		return ErrReleased
	}
	inner := d.inner
	d.inner = nil
	var err error
	if own, ok := inner.(owner); ok {
		err = own.releaseOwned()
	} else {
		err = inner.Release()
	}
	d.release()
	if err != nil {
		return fmt.Errorf("decorator: release %s inner: %w", d.name, err)
	}
	return nil
}
