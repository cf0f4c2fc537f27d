package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyToken          = errors.New("backend returned an empty token")

	ErrUnknownFileType = errors.New("unknown content file type")
	ErrEmptyFilePath   = errors.New("file path is empty")

	ErrContactNameRequired    = errors.New("name is required")
	ErrContactEmailRequired   = errors.New("email is required")
	ErrContactEmailInvalid    = errors.New("email is invalid")
	ErrContactSubjectRequired = errors.New("subject is required")
	ErrContactBodyRequired    = errors.New("message is required")
)
