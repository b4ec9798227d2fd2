package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// account fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAccountNotFound is returned when no account matches the requested
	// username.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRecordNotFound is returned when no record matches both the requested
	// id and the owner id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordNotSaved is returned when an INSERT completes without
	// returning the new record id.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrSavingImage is returned when an uploaded image cannot be written to
	// the image store.
	ErrSavingImage = errors.New("error saving image")
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
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name other
	// than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
