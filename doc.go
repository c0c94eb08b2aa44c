// Package pixedit implements the state-management core of an interactive
// image editor: a registry of named pixel transforms, the built-in
// transforms themselves, and an undo history of deep-copied image
// snapshots.
//
// # Quick Start
//
//	import "github.com/gopix/pixedit"
//
//	// Start from a solid 64x64 RGB image
//	buf, _ := pixedit.Uniform(64, 64, 3, 200)
//	session, _ := pixedit.NewSession(buf, pixedit.DefaultRegistry())
//
//	session.Apply("grayscale")
//	session.Apply("blur")
//	session.Undo()
//
//	current := session.Current()
//
// # Architecture
//
// The core is organized into:
//   - Public API: Buffer, FilterRegistry, FilterHistory, Session, Catalog
//   - Internal: kernel (convolution), imgio (file codec)
//   - Binary: cmd/pixedit (interactive command loop)
//
// # Ownership
//
// Every buffer produced by a filter or stored in history is an
// independent deep copy. No backing storage is ever shared, so mutating
// state through one handle can never corrupt another.
//
// # Errors
//
// The core never logs or performs I/O. Failures are reported as typed
// sentinel errors (ErrShape, ErrInvalidName, ErrUnknownFilter,
// ErrEmptyHistory) for the caller to present; failed operations leave
// no partial state behind.
package pixedit
