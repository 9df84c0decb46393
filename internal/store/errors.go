package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when no vault entry matches both the
	// requested id and the owner. Absent and foreign ids are indistinguishable.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrUserNotFound is returned when a lookup by username, email or id
	// produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. a second account with the same username or email.
	ErrConflict = errors.New("storage conflict")

	// ErrUnavailable is returned when the database cannot be reached or is
	// temporarily unable to serve the request (connection loss, busy or
	// locked file).
	ErrUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedDriver is returned by [Open] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
