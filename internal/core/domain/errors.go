package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password so
	// login failures never reveal which field was bad.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrForbidden  = errors.New("access forbidden")
	ErrValidation = errors.New("invalid input")
)
