package models

import "errors"

var (
	// ErrNotFound is returned when a query matches no usable data
	ErrNotFound = errors.New("data tidak ditemukan")
	// ErrInvalidFilter is returned when request parameters fail validation
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrConflict is returned when a unique record already exists
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is returned for bad credentials or sessions
	ErrUnauthorized = errors.New("unauthorized")
)
