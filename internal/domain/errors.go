package domain

import "errors"

// Fatal preconditions of a generation batch. Each aborts before any
// generation request is sent.
var (
	ErrNoWorkspace           = errors.New("no workspace folder found")
	ErrProjectTypeUndetected = errors.New("could not detect project type (no python, java or nodejs sources found)")
	ErrNoRelevantFiles       = errors.New("no relevant source files found for test generation")
)

// Per-file and per-command failures.
var (
	ErrEmptyResponse   = errors.New("generation service returned no code")
	ErrUnsupportedFile = errors.New("unsupported source file type")
	ErrNoTestResults   = errors.New("no test results file found, run the tests first")
)
