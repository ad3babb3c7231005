package hanzi

import "errors"

var (
	// ErrInvalidDataset indicates a table document could not be decoded.
	ErrInvalidDataset = errors.New("invalid character dataset")
	// ErrInvalidKey indicates a table key is not a small unsigned integer.
	ErrInvalidKey = errors.New("table key must be an integer between 0 and 255")
)
