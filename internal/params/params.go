package params

import (
	"fmt"
	"os"

	"github.com/inovacc/timejar/internal/application"
)

// Resolve returns override, or the application directory when override is
// empty, and makes sure the directory exists.
func Resolve(override string) (string, error) {
	dir := override
	if dir == "" {
		var err error

		dir, err = application.GetApplicationDirectory()
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return dir, nil
}
