package usecase

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrNotStudent         = errors.New("user is not a student")
	ErrMissingStudentID   = errors.New("studentId is required")
	ErrMissingUploadField = errors.New("file and studentId are required")
	ErrInvalidFilename    = errors.New("filename has no usable characters")
	ErrUnreadableResume   = errors.New("could not read resume content")
	ErrAIUnavailable      = errors.New("ai analysis is not configured")
	ErrAIFailed           = errors.New("ai analysis failed")
)
