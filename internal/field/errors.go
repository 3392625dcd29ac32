package field

import "errors"

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("field: invalid configuration")
