package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// package, booking, or holiday does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a quote request fails
// input validation (e.g. negative night count, no package selected).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationPrefix is how ErrValidation reads inside a wrapped error chain.
// Handlers strip everything up to it to get the user-facing message.
const ValidationPrefix = "validation error: "
