package pixedit

import "fmt"

// Session drives one image-editing conversation: it owns the undo
// history for a single image and applies registry filters to the current
// state. The registry may be shared read-only between sessions; the
// history never is. Both operations are atomic: on failure the session
// is observably unchanged.
type Session struct {
	registry *FilterRegistry
	history  *FilterHistory
}

// NewSession creates a session for the given initial image. A nil buffer
// fails with ErrShape. A nil registry installs DefaultRegistry.
func NewSession(initial *Buffer, registry *FilterRegistry) (*Session, error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: nil initial buffer", ErrShape)
	}
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &Session{
		registry: registry,
		history:  NewHistory(initial),
	}, nil
}

// Apply looks up the named filter and applies it to the current image.
// On success the result becomes the new current image and is returned.
// An unknown name fails with ErrUnknownFilter and leaves the history
// untouched.
func (s *Session) Apply(name string) (*Buffer, error) {
	transform, err := s.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	s.history.Push(transform(s.history.Peek()))
	return s.history.Peek(), nil
}

// Undo discards the most recent filter result and returns the previous
// image. Undoing past the originally loaded image fails with
// ErrEmptyHistory and leaves the session untouched.
func (s *Session) Undo() (*Buffer, error) {
	if _, err := s.history.Pop(); err != nil {
		return nil, err
	}
	return s.history.Peek(), nil
}

// Current returns the image the session would display right now.
func (s *Session) Current() *Buffer {
	return s.history.Peek()
}

// Revert rewinds the session to the originally loaded image and returns it.
func (s *Session) Revert() *Buffer {
	s.history.Reset()
	return s.history.Peek()
}

// Steps reports how many filter applications can currently be undone.
func (s *Session) Steps() int {
	return s.history.Len() - 1
}

// Registry returns the session's filter registry, for listing available
// filter names.
func (s *Session) Registry() *FilterRegistry {
	return s.registry
}
