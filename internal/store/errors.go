package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrObserverNotFound is returned when no observer matches the phone and
	// PIN, or the observer to update does not exist.
	ErrObserverNotFound = errors.New("observer was not found")

	// ErrDeviceAlreadyRegistered is returned when another device is already
	// bound to the observer.
	ErrDeviceAlreadyRegistered = errors.New("observer already has a registered device")

	// ErrNgoNotFound is returned when no NGO has the requested id.
	ErrNgoNotFound = errors.New("ngo was not found")

	// ErrNgoAdminNotFound is returned when no NGO admin matches the account
	// and password.
	ErrNgoAdminNotFound = errors.New("ngo admin was not found")

	// ErrAlreadyExists is returned when an INSERT violates a unique
	// constraint (e.g. duplicate observer phone).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
