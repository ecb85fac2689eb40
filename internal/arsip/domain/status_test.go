package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusNextDisposition(t *testing.T) {
	t.Parallel()

	next, err := StatusPending.Next(EventDisposition)
	require.NoError(t, err)
	require.Equal(t, StatusProcessed, next)

	// Further dispositions leave the status alone.
	next, err = StatusProcessed.Next(EventDisposition)
	require.NoError(t, err)
	require.Equal(t, StatusProcessed, next)

	next, err = StatusCompleted.Next(EventDisposition)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, next)
}

func TestStatusNextComplete(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusProcessed, StatusCompleted} {
		next, err := s.Next(EventComplete)
		require.NoError(t, err)
		require.Equal(t, StatusCompleted, next)
	}
}

func TestStatusNextUnknownEvent(t *testing.T) {
	t.Parallel()

	_, err := StatusPending.Next(Event("reopen"))
	require.ErrorIs(t, err, ErrUnknownStatusEvent)
}

func TestTransitionForwardOnly(t *testing.T) {
	t.Parallel()

	require.NoError(t, Transition(StatusPending, StatusProcessed))
	require.NoError(t, Transition(StatusPending, StatusCompleted))
	require.NoError(t, Transition(StatusProcessed, StatusCompleted))

	// Idempotent writes are fine.
	require.NoError(t, Transition(StatusProcessed, StatusProcessed))

	// Backward moves are not.
	require.ErrorIs(t, Transition(StatusProcessed, StatusPending), ErrInvalidTransition)
	require.ErrorIs(t, Transition(StatusCompleted, StatusProcessed), ErrInvalidTransition)
	require.ErrorIs(t, Transition(StatusCompleted, StatusPending), ErrInvalidTransition)
}

func TestTransitionUnknownStatus(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Transition(Status("ARCHIVED"), StatusPending), ErrUnknownStatus)
	require.ErrorIs(t, Transition(StatusPending, Status("ARCHIVED")), ErrUnknownStatus)
}

func TestParseStatusAndDirection(t *testing.T) {
	t.Parallel()

	s, err := ParseStatus("PROCESSED")
	require.NoError(t, err)
	require.Equal(t, StatusProcessed, s)

	_, err = ParseStatus("processed")
	require.ErrorIs(t, err, ErrUnknownStatus)

	d, err := ParseDirection("INCOMING")
	require.NoError(t, err)
	require.Equal(t, "SM", d.Code())

	d, err = ParseDirection("OUTGOING")
	require.NoError(t, err)
	require.Equal(t, "SK", d.Code())

	_, err = ParseDirection("SIDEWAYS")
	require.ErrorIs(t, err, ErrUnknownDirection)
}
