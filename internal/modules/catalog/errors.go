package catalog

import "errors"

var ErrWorkerNotFound = errors.New("worker not found")
