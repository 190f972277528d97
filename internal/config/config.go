/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration constants, settings and path
// discovery for nvview.
package config

import (
	"os"
	"path/filepath"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "nvview"

	// DefaultDumpDir is the system-wide dump directory.
	DefaultDumpDir = "/var/lib/nvview"

	// DumpFileExtension is the expected extension for dump files.
	DumpFileExtension = ".json"

	// SettingsFileName is the settings file inside the config directory.
	SettingsFileName = "config.json"
)

// -----------------------------------------------------------------------------
// UI Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultBarWidth is the total width of a "GPU: ███ 45%" bar.
	DefaultBarWidth = 40

	// DefaultNameWidth is the column width for user names.
	DefaultNameWidth = 10

	// MinBarWidth keeps bars readable on narrow terminals.
	MinBarWidth = 12
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvDataDir overrides the default data directory.
	EnvDataDir = "NVVIEW_DATA_DIR"

	// EnvConfigDir overrides the settings directory.
	EnvConfigDir = "NVVIEW_CONFIG_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvXDGConfigHome is the XDG config home environment variable.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetDataPaths returns an ordered list of directories to search for dump files.
// Priority order:
//  1. $NVVIEW_DATA_DIR (if set)
//  2. $XDG_DATA_HOME/nvview (or ~/.local/share/nvview)
//  3. /var/lib/nvview (system default)
func GetDataPaths() []string {
	var paths []string

	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		paths = append(paths, envDir)
	}

	xdgDataHome := os.Getenv(EnvXDGDataHome)
	if xdgDataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgDataHome = filepath.Join(home, ".local", "share")
		}
	}
	if xdgDataHome != "" {
		paths = append(paths, filepath.Join(xdgDataHome, AppName))
	}

	paths = append(paths, DefaultDumpDir)

	return paths
}

// ConfigDir returns the directory holding the settings file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if xdg := os.Getenv(EnvXDGConfigHome); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}
