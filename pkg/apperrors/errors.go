package apperrors

import "errors"

// ErrEmptyFileName is returned when an analysis is requested for a blank
// file name.
var ErrEmptyFileName = errors.New("file name is empty")
