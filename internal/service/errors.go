package service

import "errors"

// Outcome kinds surfaced to handlers: validation failures map to 400,
// not-found to 404, forbidden to 403 and conflicts to 409. Services wrap
// these with fmt.Errorf("%w: detail") so handlers can match with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
