package profile

import "errors"

var (
	ErrUnknownResource  = errors.New("unknown profile resource")
	ErrReadOnlyResource = errors.New("profile resource is read-only")
	ErrResumeNotFound   = errors.New("resume not found")
)
