package knot

import (
	"fmt"

	"github.com/google/uuid"
)

// Event notifies the host of a newly confirmed knot.
type Event struct {
	KnotID int
	UID    uuid.UUID
	Kind   Kind
	// Begin and End are the particle indices delimiting the knot.
	Begin int
	End   int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s knot #%d [%d, %d]", ev.Kind, ev.KnotID, ev.Begin, ev.End)
}

// EventSink receives knot events. KnotDetected is called synchronously from
// [Detector.Advance].
type EventSink interface {
	KnotDetected(ev Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(ev Event)

func (fn EventSinkFunc) KnotDetected(ev Event) { fn(ev) }
