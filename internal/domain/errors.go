package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInstruction is returned for blank or whitespace-only input.
	ErrEmptyInstruction = errors.New("please enter a description")
	// ErrGenerationInProgress rejects a trigger while another run is active.
	ErrGenerationInProgress = errors.New("a generation is already in progress")
)

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindGeneration  ErrorKind = "generation"
	KindPersistence ErrorKind = "persistence"
	KindLaunch      ErrorKind = "launch"
)

// StageError carries the failing stage alongside the cause.
type StageError struct {
	Kind ErrorKind
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with kind.
func NewStageError(kind ErrorKind, err error) *StageError {
	return &StageError{Kind: kind, Err: err}
}

// KindOf returns the stage of err, or "" when err is not a StageError.
func KindOf(err error) ErrorKind {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind
	}
	return ""
}
