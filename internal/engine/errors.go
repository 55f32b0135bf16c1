package engine

import "errors"

var (
	ErrNotEnoughLeisure = errors.New("not enough leisure available")
	ErrHistoryLocked    = errors.New("history cannot be cleared while in debt")
)
