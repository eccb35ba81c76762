package components

import "github.com/yohamta/donburi"

// PointerData remembers the last pointer position seen by the poller
type PointerData struct {
	X, Y float64
	Seen bool // False until the first position is read
}

var Pointer = donburi.NewComponentType[PointerData]()
