package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the sentinel for every rejected lifecycle
// transition. Use errors.Is to classify; the wrapped message carries the
// offending from/to pair.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Processing ──> Completed
//	          │        │
//	          └────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Cancellation is only reachable
// through the compensating transaction that restores stock.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Processing indicates the kitchen has accepted the order.
	Processing

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was cancelled and its stock
	// adjustments reversed. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a status from its lowercase string form, as used
// in API payloads and the database. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is one an order may hold.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case Pending:
		return target == Processing || target == Cancelled
	case Processing:
		return target == Completed || target == Cancelled
	default:
		return false
	}
}

// TransitionTo applies a transition to target.
//
// Returns (target, nil) on a valid transition and
// (Unknown, ErrInvalidStatusTransition) otherwise, including any attempt to
// leave a terminal state or to reach an unrecognized status value.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}
	return target, nil
}

// Process transitions the status to Processing.
func (s Status) Process() (Status, error) {
	return s.TransitionTo(Processing)
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

// Cancel transitions the status to Cancelled. Callers must pair this with
// the compensating stock restoration; the state machine only guards the
// transition itself.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
