package meeting

import "errors"

var (
	ErrInvalidRedirect = errors.New("redirect must be an absolute http(s) URL")
)
