package storage

import "errors"

var (
	ErrSessionClosed = errors.New("session already closed")
)
