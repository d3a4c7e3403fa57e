package workbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

// LoadState reads a configuration state snapshot from a YAML or JSON file,
// chosen by extension (.yaml, .yml, .json).
func LoadState(path string) (*models.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pillarbar.NewLoadError(path, "state", pillarbar.ErrFileNotFound)
		}
		return nil, pillarbar.NewLoadError(path, "state", err)
	}

	var st models.State
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &st); err != nil {
			return nil, pillarbar.NewLoadError(path, "state",
				fmt.Errorf("%w: %v", pillarbar.ErrInvalidFormat, err))
		}
	case ".json":
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, pillarbar.NewLoadError(path, "state",
				fmt.Errorf("%w: %v", pillarbar.ErrInvalidFormat, err))
		}
	default:
		return nil, pillarbar.NewLoadError(path, "state",
			fmt.Errorf("%w: unsupported extension %q", pillarbar.ErrInvalidFormat, filepath.Ext(path)))
	}

	return &st, nil
}
