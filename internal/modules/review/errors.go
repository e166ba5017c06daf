package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid review request")
	ErrWorkerNotFound = errors.New("worker not found")
	ErrAuthorNotFound = errors.New("author not found")
)
