package engine

import "fmt"

// NotFoundError indicates an operation referenced an unknown entity id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InsufficientBalanceError is returned by reward purchases that would push
// the positive balance below zero. The purchase is rejected, not clamped.
type InsufficientBalanceError struct {
	Cost    int
	Balance int
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: cost %d, have %d", e.Cost, e.Balance)
}

// InvalidTimerStateError is returned by timer operations called in the
// wrong phase (start while running, stop/pause/resume while idle).
type InvalidTimerStateError struct {
	Op    string
	Phase TimerPhase
}

func (e InvalidTimerStateError) Error() string {
	return fmt.Sprintf("cannot %s timer while %s", e.Op, e.Phase)
}

// ValidationError indicates malformed input from a collaborator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
