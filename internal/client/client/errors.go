package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrExpired      = errors.New("expired")
)

// DuplicateError reports which signup fields the server rejected as taken.
type DuplicateError struct {
	Email bool
	Alias bool
}

func (e *DuplicateError) Error() string {
	switch {
	case e.Email && e.Alias:
		return "email and alias are already taken"
	case e.Email:
		return "email is already taken"
	case e.Alias:
		return "alias is already taken"
	default:
		return "duplicate signup fields"
	}
}
