package errs

import "errors"

// The three error kinds the engine surfaces. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can map them with errors.Is while
// logs keep the full context.
var (
	// ErrValidation covers malformed or missing input, such as empty
	// comment content or a parent comment on a different product.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced product, comment or user
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a uniqueness violation, e.g. two concurrent
	// vote creations for the same (user, product) pair.
	ErrConflict = errors.New("resource already exists")
)

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
