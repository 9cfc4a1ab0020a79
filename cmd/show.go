package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"runtime"

	"github.com/Mercerenies/wuas-render/logging"
)

// Displays a rendered board interactively by writing it to a temporary PNG
// and handing it to the platform's image viewer. The viewer owns the file
// from then on; we don't wait for it to exit.
func show(img image.Image) error {
	f, err := os.CreateTemp("", "wuas-render-*.png")
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("couldn't encode preview image: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	viewer := viewerCommand(f.Name())
	logging.Info("opening preview", "path", f.Name(), "viewer", viewer.Path)
	if err := viewer.Start(); err != nil {
		return fmt.Errorf("couldn't launch image viewer: %w", err)
	}
	return nil
}

func viewerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "shell32.dll,OpenAs_RunDLL", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
