package record

import "errors"

var ErrFieldTooLong = errors.New("field exceeds fixed capacity")
