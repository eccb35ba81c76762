package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock, sampled once per Update
type ClockData struct {
	Now   time.Time
	Delta time.Duration
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
