package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwner    = errors.New("invalid owner")
	ErrInvalidEntryID  = errors.New("entry id is required")
	ErrEmptyLabel      = errors.New("label is required")
	ErrLabelTooLong    = errors.New("label is too long")
	ErrEmptySecret     = errors.New("secret is required")
	ErrEmptyUsername   = errors.New("username is required")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password is required")
)
