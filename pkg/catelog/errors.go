package catelog

import "errors"

var ErrNotFound = errors.New("not found")
var ErrInvalidID = errors.New("id must be a number")
var ErrMissingTag = errors.New("tag must be provided in request body")
