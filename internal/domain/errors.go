package domain

import "errors"

// Sentinel errors for catalogue operations
var (
	// ErrDiscNotFound indicates the requested disc does not exist
	ErrDiscNotFound = errors.New("disc not found")

	// ErrCorruptRow indicates a persisted row could not be decoded
	ErrCorruptRow = errors.New("corrupt disc row")

	// ErrConstraint indicates a write violated a storage constraint
	ErrConstraint = errors.New("storage constraint violated")

	// ErrTitleRequired indicates a disc without a usable title
	ErrTitleRequired = errors.New("disc title is required")

	// ErrFormatRequired indicates a disc without a format
	ErrFormatRequired = errors.New("disc format is required")

	// ErrUnknownFormat indicates a format outside the supported set
	ErrUnknownFormat = errors.New("unknown disc format")
)
