package base

import (
	"fmt"
	"path/filepath"

	"github.com/Mercerenies/wuas-render/logging"
)

// Config names the data files a render needs: the sprite dictionary and the
// two sprite sheets. It is loaded once per invocation and passed explicitly
// to whatever needs it; there is no process-wide configuration state.
type Config struct {
	Files ConfigFiles `json:"files"`
}

type ConfigFiles struct {
	Dict   string `json:"dict"`
	Spaces string `json:"spaces"`
	Tokens string `json:"tokens"`
}

// Loads the configuration from the given JSON file. Relative paths in the
// config are resolved against the config file's own directory, so a config
// can be used from any working directory.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := LoadJson(path, &cfg); err != nil {
		return nil, fmt.Errorf("couldn't load config %q: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.Files.Dict = resolvePath(dir, cfg.Files.Dict)
	cfg.Files.Spaces = resolvePath(dir, cfg.Files.Spaces)
	cfg.Files.Tokens = resolvePath(dir, cfg.Files.Tokens)

	logging.Debug("loaded config", "path", path, "files", cfg.Files)
	return &cfg, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
