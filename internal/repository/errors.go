package repository

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrSchemaMissing = errors.New("fixture schema missing")
)
