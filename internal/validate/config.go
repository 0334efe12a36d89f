package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neurodemon/neurodemon/internal/config"
)

// Config validates the application configuration file. A missing file is
// fine, defaults apply; a file that exists but does not parse or validate is
// an error because the user wrote it on purpose.
func Config(path string) Result {
	result := Result{}
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		result.AddPending(config.FileName + " not found")
		result.AddItem(StatusPending, name, "not found, defaults apply")
		return result
	}

	cfg, err := config.Load(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	if err := cfg.Validate(); err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}

	result.AddItem(StatusSuccess, name, "")
	return result
}
