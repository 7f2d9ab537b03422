package parameters

import "errors"

var (
	errNumber   = errors.New("value is not a number")
	errCount    = errors.New("count must be a positive integer")
	errNegative = errors.New("value must not be negative")
	errFontSize = errors.New("font size too large")
	errBlock    = errors.New("grid block exceeds the range of dimensions")
)
