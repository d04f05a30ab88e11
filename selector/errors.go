// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStoreFailure = errors.New("store failure")
)

// Error pairs a kind with a message fit for clients.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func storeError(message string, err error) *Error {
	return &Error{Kind: ErrStoreFailure, Message: message, Err: err}
}

var (
	errNoVisitor       = newError(ErrUnauthorized, "Please set your name first")
	errNameRequired    = newError(ErrInvalidInput, "Name is required")
	errInvalidVoteType = newError(ErrInvalidInput, "Invalid vote type")
	errNoRestaurant    = newError(ErrNotFound, "Restaurant not found")
	errSuggestName     = newError(ErrInvalidInput, "Restaurant name is required")
	errDuplicate       = newError(ErrConflict, "This restaurant already exists!")
)
