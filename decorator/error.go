package decorator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInner a Decorator was given no usable inner Component
	ErrInvalidInner = errors.New("decorator: invalid inner component")

	// ErrUnknownAugmentation augmentation kind is not in the transform table
	ErrUnknownAugmentation = errors.New("decorator: unknown augmentation")

	// ErrReleased component was already released
	ErrReleased = errors.New("decorator: component released")

	// ErrOwned component is owned by a Decorator and is released through it
	ErrOwned = errors.New("decorator: component owned by a decorator")
)

// UnknownAugmentationError reports an augmentation identifier outside the recognized set.
// Name is set when the identifier came from text, Kind otherwise.
type UnknownAugmentationError struct {
	Kind Kind
	Name string
}

func (e UnknownAugmentationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q", ErrUnknownAugmentation.Error(), e.Name)
	}
	return fmt.Sprintf("%s %s", ErrUnknownAugmentation.Error(), e.Kind)
}

func (e UnknownAugmentationError) Is(target error) bool {
	return target == ErrUnknownAugmentation
}
