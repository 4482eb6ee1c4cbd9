package errs

import (
	"errors"
)

var (
	ErrInvalidName   = errors.New("name must not be blank")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyLoaned = errors.New("this book is already on loan")
	ErrInvalidState  = errors.New("no outstanding loan for this book")
)
