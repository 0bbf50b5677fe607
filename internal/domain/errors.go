package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidColor         = errors.New("invalid color")
	ErrUnknownPreset        = errors.New("unknown size preset")
	ErrUnknownFont          = errors.New("unknown font family")
	ErrUnknownCategory      = errors.New("unknown suggestion category")
	ErrInvalidSuggestion    = errors.New("invalid suggestion")
	ErrImageDecode          = errors.New("image decode failed")
	ErrGeneratorUnavailable = errors.New("text generator unavailable")
)
