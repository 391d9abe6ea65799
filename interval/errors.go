package interval

import "errors"

// ErrCorruptEncoding is returned when binary or JSON input does not decode
// to a valid interval. Errors caused by invalid decoded fields also match
// collections.ErrInvalidArgument.
var ErrCorruptEncoding = errors.New("interval: corrupt encoding")
