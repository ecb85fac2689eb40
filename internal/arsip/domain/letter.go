package domain

import (
	"errors"
	"time"
)

// Direction says whether a letter was received or sent.
type Direction string

const (
	DirectionIncoming Direction = "INCOMING"
	DirectionOutgoing Direction = "OUTGOING"
)

var ErrUnknownDirection = errors.New("domain: unknown letter direction")

// ParseDirection validates a client-supplied direction string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionIncoming, DirectionOutgoing:
		return Direction(s), nil
	}
	return "", ErrUnknownDirection
}

// Code returns the two-letter token used in suggested letter numbers:
// SM (surat masuk) for incoming, SK (surat keluar) for outgoing.
func (d Direction) Code() string {
	if d == DirectionIncoming {
		return "SM"
	}
	return "SK"
}

// Letter is an archived piece of correspondence. Date is the letter's own
// stated calendar date; CreatedAt is the archival timestamp and drives the
// per-year numbering sequence.
type Letter struct {
	ID        string
	Direction Direction
	Number    string // globally unique across both directions
	Subject   string
	Sender    string
	Recipient string
	Date      time.Time // calendar date, time component unused
	Category  string
	Status    Status
	FilePath  string // attachment reference, "" when none
	CreatedAt time.Time
}
