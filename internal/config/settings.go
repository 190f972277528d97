package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds user-configurable options. CLI flags take precedence.
type Settings struct {
	// BarWidth is the total width of utilization bars.
	BarWidth int `json:"bar_width" yaml:"bar_width"`
	// NameWidth is the width of the USER column.
	NameWidth int `json:"name_width" yaml:"name_width"`
	// Color is auto, always or never.
	Color string `json:"color" yaml:"color"`
	// LogFile receives diagnostic logs; empty disables logging.
	LogFile string `json:"log_file" yaml:"log_file"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultSettings returns sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		BarWidth:  DefaultBarWidth,
		NameWidth: DefaultNameWidth,
		Color:     "auto",
		LogLevel:  "info",
	}
}

// LoadSettings reads settings from path, returning defaults if the file
// doesn't exist. Files ending in .yaml or .yml are parsed as YAML, anything
// else as JSON. It never creates anything on disk.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, s)
	} else {
		err = json.Unmarshal(data, s)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to path, creating the directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Settings) normalize() {
	if s.BarWidth < MinBarWidth {
		s.BarWidth = MinBarWidth
	}
	if s.NameWidth <= 0 {
		s.NameWidth = DefaultNameWidth
	}
	if s.Color == "" {
		s.Color = "auto"
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
