package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repository which storage sentinel a failed operation maps to.
type ErrorClassification int

const (
	// Unclassified errors are returned wrapped in the low-level sentinel only.
	Unclassified ErrorClassification = iota

	// Conflict indicates a uniqueness or primary key violation.
	Conflict

	// Unavailable indicates the database could not serve the request at all
	// (connection loss, server shutting down, busy or locked file).
	Unavailable
)

// ErrorClassificator maps a driver specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (c ErrorClassification) String() string {
	switch c {
	case Conflict:
		return "conflict"
	case Unavailable:
		return "unavailable"
	default:
		return "unclassified"
	}
}

// classifyCommon recognises errors raised by database/sql itself regardless
// of the driver in use. An expired or cancelled context means the database
// did not answer in time.
func classifyCommon(err error) ErrorClassification {
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return Unavailable
	}
	return Unclassified
}

// classify wraps err with [ErrConflict] or [ErrUnavailable] when the dialect
// classifier recognises it. Other errors are returned unchanged.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}

	class := Unclassified
	if db.errorClassificator != nil {
		class = db.errorClassificator.Classify(err)
	}
	if class == Unclassified {
		class = classifyCommon(err)
	}

	switch class {
	case Conflict:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}
