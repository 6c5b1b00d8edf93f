package application

import "errors"

var ErrInvalidRange = errors.New("invalid range")
