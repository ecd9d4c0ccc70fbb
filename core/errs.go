package core

import "errors"

var (
	ErrColumnNotFound = errors.New("value column not found")
	ErrLabelNotFound  = errors.New("label column not found")
	ErrLengthMismatch = errors.New("column length does not match time index")
)
