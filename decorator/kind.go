package decorator

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind selects the transform a Decorator applies to the content of its inner Component.
type Kind int

const (
	// Tag appends a hashtag.
	Tag Kind = iota + 1
	// Feature marks the content as pinned.
	Feature
)

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as decorators of T.
type DecoratorFunc[T any] func(obj T) T

// Decorate call f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) T {
	return f(obj)
}

// Transform is a total function over rendered content.
type Transform = DecoratorFunc[string]

// Suffix returns a Transform appending token.
func Suffix(token string) Transform {
	return func(content string) string {
		return content + token
	}
}

type kindInfo struct {
	name      string
	transform Transform
}

// kindTable new kinds are added here, composition never changes.
var kindTable = map[Kind]kindInfo{
	Tag:     {name: "tag", transform: Suffix(" [#summer]")},
	Feature: {name: "feature", transform: Suffix(" [Pinned]")},
}

func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is in the transform table.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Transform returns the transform of k, or nil if k is unknown.
func (k Kind) Transform() Transform {
	return kindTable[k].transform
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, UnknownAugmentationError{Kind: k}
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind returns the kind named name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for kind, info := range kindTable {
		if strings.EqualFold(info.name, trimmed) {
			return kind, nil
		}
	}
	return 0, UnknownAugmentationError{Name: name}
}

// ParseKinds parses names in order, stopping at the first unknown one.
func ParseKinds(names ...string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// AllKinds returns every recognized kind in declaration order.
func AllKinds() []Kind {
	kinds := maps.Keys(kindTable)
	slices.Sort(kinds)
	return kinds
}
