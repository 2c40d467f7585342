// pkg/manifest/load.go
package manifest

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads, parses, and validates a functions manifest.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
