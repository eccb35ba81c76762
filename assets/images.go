package assets

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/automoto/trailstack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LoadImages decodes every image file directly under dir, in name order.
// Subdirectories and other files are skipped.
func LoadImages(fsys fs.FS, dir string) ([]*ebiten.Image, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir %q: %w", dir, err)
	}

	var images []*ebiten.Image
	for _, entry := range entries {
		if entry.IsDir() || !imageExts[strings.ToLower(path.Ext(entry.Name()))] {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		images = append(images, img)
	}
	return images, nil
}

// TrailImages returns the image set for the trail. An image directory that
// cannot be read yields an empty set, which leaves the trail idle; without a
// directory generated placeholder cards are used.
func TrailImages() []*ebiten.Image {
	if config.Assets.ImageDir == "" {
		return Placeholders(config.Assets.PlaceholderCount, config.Assets.PlaceholderSize)
	}

	images, err := LoadImages(os.DirFS(config.Assets.ImageDir), ".")
	if err != nil {
		log.Printf("[assets] %v", err)
		return nil
	}
	if len(images) == 0 {
		log.Printf("[assets] no images found in %s", config.Assets.ImageDir)
	}
	return images
}
