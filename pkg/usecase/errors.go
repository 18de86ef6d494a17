package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	ErrEmptyInput     = goerr.New("input is empty")
	ErrInvalidInput   = goerr.New("input is invalid")
	ErrActionNotFound = goerr.New("action not found")
	ErrSearchDisabled = goerr.New("semantic search is not configured")
)
