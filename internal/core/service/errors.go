package service

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown user and wrong password;
	// the two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnknownAccount = errors.New("no such account")
	ErrNotLoggedIn    = errors.New("not logged in")
)
