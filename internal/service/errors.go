package service

import "errors"

var (
	// ErrUserNotFound indicates no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates a user with that email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAlreadyMember indicates the user already holds a role on the project.
	ErrAlreadyMember = errors.New("user already assigned to project")
	// ErrOwnerImmutable indicates an attempt to change or remove the
	// project owner's membership.
	ErrOwnerImmutable = errors.New("project owner's role cannot be changed")
)
