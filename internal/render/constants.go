/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package render provides plain-text rendering of GPU dump data.
package render

// -----------------------------------------------------------------------------
// Process Table Columns
// -----------------------------------------------------------------------------

const (
	// PIDWidth fits any 7-digit PID.
	PIDWidth = 7

	// GPUMemWidth is the width of the GPU-MEM column ("40960MiB").
	GPUMemWidth = 8

	// CPUWidth is the width of the %CPU column.
	CPUWidth = 6

	// TimeWidth is the width of the TIME column ("12.5 days").
	TimeWidth = 10

	// MinCommandWidth keeps some of the command visible on narrow terminals.
	MinCommandWidth = 8
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// SectionHeaderFormat is the format for section titles.
	SectionHeaderFormat = "=== %s ==="

	// NoProcesses is shown when a device has no processes.
	NoProcesses = "No running processes found"
)
