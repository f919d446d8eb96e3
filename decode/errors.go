package decode

import "errors"

var errTrailingData = errors.New("decode: unexpected data after top-level value")
