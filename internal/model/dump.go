/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// MaxFileSize is the maximum allowed dump file size (16 MiB).
const MaxFileSize = 16 * 1024 * 1024

// ErrEmptyDump is returned for dumps without samples.
var ErrEmptyDump = errors.New("dump has no samples")

// LoadDump reads and parses a GPU dump JSON file.
func LoadDump(path string) (*Dump, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("cannot parse JSON: %w", err)
	}

	if err := dump.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &dump, nil
}

// Validate checks structural invariants the viewer relies on.
func (d *Dump) Validate() error {
	if len(d.Samples) == 0 {
		return ErrEmptyDump
	}
	for i, s := range d.Samples {
		seen := make(map[int]bool, len(s.Devices))
		for _, dev := range s.Devices {
			if seen[dev.Index] {
				return fmt.Errorf("sample %d: duplicate device index %d", i, dev.Index)
			}
			seen[dev.Index] = true
		}
	}
	return nil
}
