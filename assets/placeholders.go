package assets

import (
	"image/color"
	"strconv"

	"github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Placeholders draws n numbered square cards, cycling through the configured hues.
func Placeholders(n, size int) []*ebiten.Image {
	hues := config.Assets.PlaceholderHues
	if n <= 0 || size <= 0 || len(hues) == 0 {
		return nil
	}

	face := fonts.Label.Get()
	s := float32(size)
	images := make([]*ebiten.Image, 0, n)
	for i := 0; i < n; i++ {
		img := ebiten.NewImage(size, size)
		vector.FillRect(img, 0, 0, s, s, hues[i%len(hues)], true)
		vector.StrokeRect(img, 2, 2, s-4, s-4, 3, config.White, true)

		label := strconv.Itoa(i + 1)
		bounds, _ := font.BoundString(face, label)
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		text.Draw(img, label, face, (size-w)/2, (size+h)/2, color.Black)

		images = append(images, img)
	}
	return images
}
