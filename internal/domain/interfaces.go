package domain

import "errors"

// ErrInvalidArgument is the single error condition of the core: a non-positive
// chain length, a non-positive pixel size, or an unresolvable size request.
var ErrInvalidArgument = errors.New("invalid argument")

// IconService renders a complete icon description for a seed string.
type IconService interface {
	Render(seed string, opts Options) (Image, error)
}

// IconCache memoizes rendered images keyed by (seed, pixel size, circular).
// Implementations must be safe for concurrent use.
type IconCache interface {
	Get(key string) (Image, bool)
	Put(key string, img Image)
}
