package pizza

import "errors"

var (
	// ErrInvalidSize is returned when the size of a pizza is read and it is
	// neither L nor XL.
	ErrInvalidSize = errors.New("invalid pizza size")

	// ErrUnknownVariant is returned when a pizza name is not on the menu.
	ErrUnknownVariant = errors.New("unknown pizza")
)
