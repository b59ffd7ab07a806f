package repository

import "errors"

var (
	// ErrInvalidImageSource indicates an invalid image source reference
	ErrInvalidImageSource = errors.New("invalid image source")

	// ErrImageNotFound indicates the image was not found
	ErrImageNotFound = errors.New("image not found")
)
