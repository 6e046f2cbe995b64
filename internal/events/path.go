package events

import (
	"fmt"
	"os"
	"path/filepath"
)

func DefaultSocketPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir != "" {
		return filepath.Join(runtimeDir, "panehop", "events.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("panehop-%d", os.Getuid()), "events.sock")
}
