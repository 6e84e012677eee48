package services

import "errors"

// Service errors are sentinels so handlers can classify outcomes with
// errors.Is and map them to status codes.
var (
	ErrPromptNotFound     = errors.New("prompt not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNoFieldsProvided   = errors.New("no fields provided for update")
	ErrNullRequiredField  = errors.New("required field cannot be null")
)
