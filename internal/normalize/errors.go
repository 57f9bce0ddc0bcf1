package normalize

import (
	"errors"
)

// ErrMalformedRecord marks a list element that is not a JSON object at
// all. Object-shaped records always normalize, however incomplete.
var ErrMalformedRecord = errors.New("record is not a JSON object")
