package domain

import "errors"

// ErrValidation marks errors caused by invalid user input.
var ErrValidation = errors.New("validation failed")
