package models

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
)
