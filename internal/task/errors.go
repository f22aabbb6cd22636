package task

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateSpec reports a date specification that is neither a
	// relative offset nor an absolute date, or one that resolves outside
	// the representable date range.
	ErrInvalidDateSpec = errors.New("invalid date spec")

	// ErrInvalidTransition reports a lifecycle operation applied to a task
	// whose current state does not permit it.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrTaskNotFound reports a task id absent from the collection.
	ErrTaskNotFound = errors.New("task not found")
)

// TransitionError carries the details of a rejected lifecycle operation.
type TransitionError struct {
	ID    int
	State State
	Op    string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s task %d (state: %s)", e.Op, e.ID, e.State)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NotFoundError identifies the missing task by id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrTaskNotFound }
