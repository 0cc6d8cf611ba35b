package dataproc

import "errors"

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrWritingFile  = errors.New("error writing file")
	ErrReadingFile  = errors.New("error reading file")
	ErrDecodingJSON = errors.New("error decoding json")
)
