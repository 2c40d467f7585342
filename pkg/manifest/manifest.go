// manifest/manifest.go
package manifest

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-functions/pkg/functions"
)

// Function declares one handler a deployment expects to be registered.
type Function struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"` // "http" | "event" | "cloud_event"
}

// Config is the top-level functions manifest.
type Config struct {
	Functions []Function `toml:"function"`
}

// Validate runs structural checks: non-empty names, known kinds, no duplicates.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Functions))
	for i, f := range c.Functions {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("function %d: name required", i)
		}
		if !functions.Kind(f.Kind).Valid() {
			return fmt.Errorf("function %d (%s): unknown kind %q", i, f.Name, f.Kind)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("function %d: duplicate name %q", i, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
