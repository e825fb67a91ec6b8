package content

import "errors"

var (
	ErrUnknownKind = errors.New("unknown content listing")
)
