package db

import "errors"

var (
	ErrRecordExists  = errors.New("record already exists")
	ErrRecordMissing = errors.New("record does not exist")
)
