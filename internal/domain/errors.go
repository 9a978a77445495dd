package domain

import "errors"

// Sentinel errors shared by stores, services and the dialog.
var (
	ErrFormat           = errors.New("malformed word entry")
	ErrAlreadyExists    = errors.New("word already exists")
	ErrNotFound         = errors.New("word not found")
	ErrNoSuchUser       = errors.New("no such user")
	ErrStoreUnavailable = errors.New("store unavailable")
)
