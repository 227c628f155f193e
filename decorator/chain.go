package decorator

import (
	"github.com/go-leo/design-pattern/builder"
	"go.uber.org/zap"
)

// Build returns a chain rendering payload augmented by kinds. The first kind wraps the base
// component and is applied first, the last kind becomes the outermost Decorator.
// With no kinds the unwrapped Base is returned.
//
// Build is all-or-nothing: if a kind is unknown, every component created so far is released
// and an UnknownAugmentationError is returned.
func Build(payload string, kinds []Kind, opts ...Option) (Component, error) {
	o := newOption(opts...)
	var current Component = newBase(payload, o)
	for i, kind := range kinds {
		next, err := newDecorator(kind, current, o)
		if err != nil {
			o.Logger.Debug("chain build failed", zap.Int("index", i), zap.Stringer("kind", kind), zap.Error(err))
			if relErr := current.Release(); relErr != nil {
				o.Logger.Error("release of partial chain failed", zap.Error(relErr))
			}
			return nil, err
		}
		current = next
	}
	o.Logger.Debug("chain built", zap.Int("depth", len(kinds)+1))
	return current, nil
}

// BuildNames parses names with ParseKinds and builds the chain.
func BuildNames(payload string, names []string, opts ...Option) (Component, error) {
	kinds, err := ParseKinds(names...)
	if err != nil {
		return nil, err
	}
	return Build(payload, kinds, opts...)
}

var _ builder.Builder[Component] = (*ChainBuilder)(nil)

// ChainBuilder holds a chain description, every Build returns a new independent chain.
type ChainBuilder struct {
	payload string
	kinds   []Kind
	opts    []Option
}

func NewChainBuilder(payload string, kinds []Kind, opts ...Option) *ChainBuilder {
	return &ChainBuilder{
		payload: payload,
		kinds:   append([]Kind(nil), kinds...),
		opts:    opts,
	}
}

func (b *ChainBuilder) Build() (Component, error) {
	return Build(b.payload, b.kinds, b.opts...)
}

// Kinds returns the augmentation kinds of c from the outermost Decorator inwards.
// Ownership is not affected.
func Kinds(c Component) []Kind {
	var kinds []Kind
	for {
		d, ok := c.(*Decorator)
		if !ok || d == nil {
			return kinds
		}
		kinds = append(kinds, d.kind)
		c = d.inner
	}
}

// Depth returns the number of components in the chain rooted at c.
func Depth(c Component) int {
	if isNil(c) {
		return 0
	}
	return len(Kinds(c)) + 1
}
