package engine

import (
	"fmt"

	"github.com/seekerror/build"
)

var version = build.NewVersion(0, 1, 0)

// Name returns the engine name and version, the same "name version" shape
// the teacher's Engine.Name() reports.
func Name() string {
	return fmt.Sprintf("hexwar %v", version)
}
