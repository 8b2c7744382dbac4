package go_dynamic_array

import "errors"

// OutOfRange is the only checked failure in this package. It is returned by
// At when the index is not within [0, size).
var OutOfRange = errors.New("index out of range")
