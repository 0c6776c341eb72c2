package pit

import "errors"

// Both errors are used as panic values. They signal misuse of the package,
// not conditions that come up during normal play.
var (
	ErrInvalidDimensions = errors.New("pit: invalid dimensions")
	ErrInvalidLock       = errors.New("pit: invalid lock")
)
