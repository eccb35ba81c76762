package events

import (
	"time"

	"github.com/yohamta/donburi/features/events"
)

// PointerMovedEvent is published whenever the pointer position changes
type PointerMovedEvent struct {
	X, Y float64
	Time time.Time
}

var PointerMoved = events.NewEventType[PointerMovedEvent]()
