package pixedit

import "errors"

// Sentinel errors returned by the editing core. Callers match them with
// errors.Is; detail is attached by wrapping with fmt.Errorf("%w: ...").
var (
	// ErrShape is returned when buffer dimensions and sample data disagree.
	ErrShape = errors.New("pixedit: invalid buffer shape")

	// ErrInvalidName is returned when registering a filter under an empty name.
	ErrInvalidName = errors.New("pixedit: invalid filter name")

	// ErrUnknownFilter is returned when looking up a name that was never registered.
	ErrUnknownFilter = errors.New("pixedit: unknown filter")

	// ErrEmptyHistory is returned when undoing past the originally loaded image.
	ErrEmptyHistory = errors.New("pixedit: nothing to undo")
)
