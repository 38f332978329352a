package hierarchy

import "errors"

var (
	// ErrProjectNotFound indicates the project id does not resolve.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound indicates the task id does not resolve.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAccessDenied indicates the acting user lacks the required role.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidMove indicates a structural move that was rejected:
	// it would create a cycle, or source and destination are the same.
	ErrInvalidMove = errors.New("invalid move")
)
