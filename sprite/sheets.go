package sprite

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/Mercerenies/wuas-render/base"
	"github.com/Mercerenies/wuas-render/logging"
)

// Sheets holds the two decoded sprite sheets a render draws from. Each render
// invocation opens its own; the underlying files are closed as soon as
// decoding finishes, on success and failure alike.
type Sheets struct {
	Spaces image.Image
	Tokens image.Image
}

func OpenSheets(cfg *base.Config) (*Sheets, error) {
	spaces, err := loadImage(cfg.Files.Spaces)
	if err != nil {
		return nil, fmt.Errorf("couldn't open spaces sheet: %w", err)
	}
	tokens, err := loadImage(cfg.Files.Tokens)
	if err != nil {
		return nil, fmt.Errorf("couldn't open tokens sheet: %w", err)
	}
	return &Sheets{Spaces: spaces, Tokens: tokens}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %q: %w", path, err)
	}
	logging.Trace("decoded sheet", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}
