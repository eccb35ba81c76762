package systems

import (
	"fmt"
	"time"

	cfg "github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Reused between frames to avoid allocations
var hudLines []string

// DrawHUD shows trail state in the top-left corner when debug is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	hudLines = hudLines[:0]
	if session, ok := trailSession(ecs.World); ok {
		px, py := session.Pointer()
		stats := session.Stats()
		vw, vh := session.Viewport()
		wave := "off"
		if session.Config().Wave.Enabled {
			wave = "on"
		}
		idle := "-"
		if last := session.LastMove(); !last.IsZero() {
			idle = GetOrCreateClock(ecs).Now.Sub(last).Truncate(time.Millisecond).String()
		}
		hudLines = append(hudLines,
			fmt.Sprintf("state     %s", session.State()),
			fmt.Sprintf("pointer   %.0f, %.0f", px, py),
			fmt.Sprintf("history   %d/%d", session.History().Len(), session.History().Limit()),
			fmt.Sprintf("idle      %s", idle),
			fmt.Sprintf("viewport  %.0fx%.0f", vw, vh),
			fmt.Sprintf("reshuffle %d", stats.Reshuffles),
			fmt.Sprintf("drops     %d  recalls %d", stats.Drops, stats.Recalls),
			fmt.Sprintf("wave      %s", wave),
		)
	} else {
		hudLines = append(hudLines, "no trail")
	}
	hudLines = append(hudLines, fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	face := fonts.HUD.Get()
	widest := 0
	for _, line := range hudLines {
		if w := font.MeasureString(face, line).Ceil(); w > widest {
			widest = w
		}
	}

	pad := cfg.HUD.Padding
	boxW := float32(float64(widest) + pad*2)
	boxH := float32(float64(len(hudLines)*cfg.HUD.LineGap) + pad*2)
	vector.FillRect(screen, 0, 0, boxW, boxH, cfg.HUD.BoxColor, false)

	for i, line := range hudLines {
		y := int(pad) + (i+1)*cfg.HUD.LineGap - 3
		text.Draw(screen, line, face, int(pad), y, cfg.HUD.TextColor)
	}
}
