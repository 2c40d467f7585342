// pkg/manifest/verify.go
package manifest

import (
	"fmt"

	"github.com/joeydtaylor/steeze-functions/pkg/functions"
)

// Verify checks every declared function against reg: the name must be
// registered and carry the declared kind. Read-only against the registry,
// so it is safe to run while serving.
func (c *Config) Verify(reg *functions.Registry) error {
	for _, f := range c.Functions {
		d, ok := reg.Lookup(f.Name)
		if !ok {
			return fmt.Errorf("function %q declared but not registered", f.Name)
		}
		if d.Kind() != functions.Kind(f.Kind) {
			return fmt.Errorf("function %q registered as %q, manifest declares %q", f.Name, d.Kind(), f.Kind)
		}
	}
	return nil
}
