package domain

import "errors"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnreadableImage  = errors.New("unreadable image data")
	ErrProviderFailure  = errors.New("storage provider request failed")
)
