package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alnview/alnview-cli/pkg/models"
)

const (
	AlnviewDir   = ".alnview"
	SettingsFile = "settings.yaml"
)

// ReadSettings loads settings from .alnview/settings.yaml in the current
// directory. A missing file yields the defaults; a malformed file is an
// error so a typo does not silently reset the theme.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(AlnviewDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	settings.Merge(models.DefaultSettings())
	return &settings, nil
}

// WriteSettings persists settings to .alnview/settings.yaml, creating the
// directory if needed.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(AlnviewDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", AlnviewDir, err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(AlnviewDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
