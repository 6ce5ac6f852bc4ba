package domain

import "errors"

var (
	ErrNotFound       = errors.New("notification not found")
	ErrInvalidType    = errors.New("unsupported notification type")
	ErrInvalidContent = errors.New("notification content is required")
)
