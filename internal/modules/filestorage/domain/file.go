package domain

import "errors"

// ErrFileNotFound is returned when no object exists under a key.
var ErrFileNotFound = errors.New("file not found")

// File describes a stored object.
type File struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}
