package tags

import "github.com/yohamta/donburi"

var (
	TrailImage = donburi.NewTag().SetName("TrailImage")
	Trail      = donburi.NewTag().SetName("Trail")
)
