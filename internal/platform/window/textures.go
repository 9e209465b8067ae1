package window

import (
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-odyssey/internal/assets"
)

// Textures holds the decoded images. Any of them may be nil, in which case
// the canvas draws a vector shape instead.
type Textures struct {
	Player     *ebiten.Image
	Asteroid   *ebiten.Image
	Logo       *ebiten.Image
	Background *ebiten.Image
	Icon       image.Image
}

// LoadTextures decodes every texture and the window icon from dir.
func LoadTextures(dir string) (Textures, assets.Report) {
	var (
		tex Textures
		rep assets.Report
	)
	slots := map[string]**ebiten.Image{
		"player":     &tex.Player,
		"asteroid":   &tex.Asteroid,
		"logo":       &tex.Logo,
		"background": &tex.Background,
	}

	for _, a := range assets.OfKind(assets.KindTexture) {
		img, err := decodeImage(dir, a)
		if err != nil {
			rep.Add(a, err)
			continue
		}
		if slot, ok := slots[a.Name]; ok {
			*slot = ebiten.NewImageFromImage(img)
		}
	}

	for _, a := range assets.OfKind(assets.KindIcon) {
		img, err := decodeImage(dir, a)
		if err != nil {
			rep.Add(a, err)
			continue
		}
		tex.Icon = img
	}
	return tex, rep
}

func decodeImage(dir string, a assets.Asset) (image.Image, error) {
	f, err := assets.Open(dir, a)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", a.File, err)
	}
	return img, nil
}
