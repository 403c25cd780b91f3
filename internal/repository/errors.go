package repository

import "errors"

// Common repository errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrTagNotFound  = errors.New("tag not found")
	ErrCallNotFound = errors.New("call not found")
	ErrTaskNotFound = errors.New("task not found")
)
