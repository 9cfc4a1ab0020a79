package logtesting

import (
	"bytes"
	"strings"

	"github.com/Mercerenies/wuas-render/logging"
)

// Runs 'fn' with the logging package's output redirected, then returns the
// lines that were logged.
func CollectOutput(fn func()) []string {
	buf := &bytes.Buffer{}
	reset := logging.Redirect(buf)
	defer reset()

	fn()

	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
