package decorator

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const baseName = "base"

// owner is implemented by the components of this package,
// claiming marks the transfer of a component into its single owner,
// after which only the owner releases it through releaseOwned.
type owner interface {
	claim() error
	releaseOwned() error
}

// node carries the lifecycle state shared by Base and Decorator.
type node struct {
	id       uuid.UUID
	name     string
	owned    bool
	released bool
	options  *option
}

func newNode(name string, o *option) node {
	n := node{id: uuid.New(), name: name, options: o}
	o.Tracker.Acquired(n.info())
	o.Logger.Debug("component acquired", zap.Stringer("id", n.id), zap.String("name", name))
	return n
}

// ID returns the identity reported to the Tracker.
func (n *node) ID() uuid.UUID {
	return n.id
}

func (n *node) info() Node {
	return Node{ID: n.id, Name: n.name}
}

func (n *node) claim() error {
	if n.released {
		return fmt.Errorf("%w: %w", ErrInvalidInner, ErrReleased)
	}
	if n.owned {
		return fmt.Errorf("%w: %s %s is already owned", ErrInvalidInner, n.name, n.id)
	}
	n.owned = true
	return nil
}

// release marks n released, callers check n.released first.
func (n *node) release() {
	n.released = true
	n.options.Tracker.Released(n.info())
	n.options.Logger.Debug("component released", zap.Stringer("id", n.id), zap.String("name", n.name))
}

func (n *node) mustBeLive() {
	if n.released {
		panic(fmt.Sprintf("decorator: render of released %s %s", n.name, n.id))
	}
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
