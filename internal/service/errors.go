package service

import "errors"

// ErrValidation marks input rejected before reaching storage, such as a
// missing required field.
var ErrValidation = errors.New("validation failed")
