package apisdk

import "errors"

var ErrMissingIntent = errors.New("missing required intent parameter")
