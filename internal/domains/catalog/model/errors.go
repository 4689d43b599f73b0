package model

import (
	"errors"
	"net/http"
)

var (
	// Lookup errors
	ErrAuthorNotFound    = errors.New("author not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrQueryFailed      = errors.New("store query failed")

	// Seed errors
	ErrSeedFailed = errors.New("seeding failed")
)

// NotFoundMessage is the error text returned with 404 responses.
const NotFoundMessage = "Author not found"

// ToHTTPStatus converts an error to an HTTP status code.
// A malformed identifier cannot match any author, so it shares the not-found status.
func ToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrInvalidIdentifier):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
