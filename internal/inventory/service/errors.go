package service

import "errors"

// Error kinds surfaced to callers. Workflow errors wrap one of these with
// fmt.Errorf("%w: ...") so handlers can map them to HTTP statuses with
// errors.Is while keeping the human-readable detail.
var (
	// ErrNotFound: unknown purchase order, item, supplier or product.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the caller lacks the role the operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState: the purchase order's status does not permit the
	// operation.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument: malformed or out-of-range request value.
	ErrInvalidArgument = errors.New("invalid argument")
)
