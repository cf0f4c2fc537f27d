package store

import "errors"

// ErrPreferenceNotFound is returned by [PreferenceRepository.Get] when no
// value is stored under the requested key.
var ErrPreferenceNotFound = errors.New("preference not found")

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
