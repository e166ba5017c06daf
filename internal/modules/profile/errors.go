package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUploadFailed    = errors.New("file upload failed")
	ErrInvalidField    = errors.New("invalid field value")
)
