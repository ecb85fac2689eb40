package domain

import "errors"

// Status is a letter's position in its processing lifecycle. It only ever
// moves forward: PENDING -> PROCESSED -> COMPLETED.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
	StatusCompleted Status = "COMPLETED"
)

// Event is something that happens to a letter and may advance its status.
type Event string

const (
	// EventDisposition fires when a letter is routed to another user.
	EventDisposition Event = "disposition"
	// EventComplete fires when processing is explicitly finished.
	EventComplete Event = "complete"
)

var (
	ErrUnknownStatus      = errors.New("domain: unknown letter status")
	ErrInvalidTransition  = errors.New("domain: invalid status transition")
	ErrUnknownStatusEvent = errors.New("domain: unknown status event")
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessed, StatusCompleted:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusProcessed:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// Next applies an event to the current status and returns the resulting one.
// Events on letters that already moved past the relevant stage are no-ops,
// so routing a second disposition never bounces a letter backward.
func (s Status) Next(e Event) (Status, error) {
	switch e {
	case EventDisposition:
		if s == StatusPending {
			return StatusProcessed, nil
		}
		return s, nil
	case EventComplete:
		return StatusCompleted, nil
	}
	return s, ErrUnknownStatusEvent
}

// Transition validates an explicit change from current to target. Staying in
// place is allowed; moving backward is not.
func Transition(current, target Status) error {
	cr, tr := current.rank(), target.rank()
	if cr < 0 || tr < 0 {
		return ErrUnknownStatus
	}
	if tr < cr {
		return ErrInvalidTransition
	}
	return nil
}
