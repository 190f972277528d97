/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package model provides data types for parsing nvview JSON dumps.
package model

import "github.com/ijuttt/nvview/internal/snapshot"

// Dump represents the top-level structure of a GPU dump JSON file.
type Dump struct {
	SchemaVersion int      `json:"schema_version"`
	CreatedAt     string   `json:"created_at,omitempty"` // RFC3339 wall-clock timestamp
	Hostname      string   `json:"hostname,omitempty"`
	DriverVersion string   `json:"driver_version,omitempty"`
	CUDAVersion   string   `json:"cuda_version,omitempty"`
	Samples       []Sample `json:"samples"`
}

// Sample is one polling round: every device and every GPU process.
type Sample struct {
	Timestamp string         `json:"timestamp,omitempty"` // RFC3339
	Devices   []DeviceEntry  `json:"devices"`
	Processes []ProcessEntry `json:"processes"`
}

// DeviceEntry holds one GPU's readings. Any metric may be "N/A".
type DeviceEntry struct {
	Index       int            `json:"index"`
	Name        snapshot.Value `json:"name"`
	BusID       snapshot.Value `json:"bus_id,omitempty"`
	GPUUtil     snapshot.Value `json:"gpu_util"`    // percent
	MemoryUtil  snapshot.Value `json:"memory_util"` // percent, controller busy time
	MemoryUsed  snapshot.Value `json:"memory_used"` // bytes
	MemoryTotal snapshot.Value `json:"memory_total"`
	Temperature snapshot.Value `json:"temperature"` // Celsius
	FanSpeed    snapshot.Value `json:"fan_speed"`   // percent
	PowerDraw   snapshot.Value `json:"power_draw"`  // milliwatts
	PowerLimit  snapshot.Value `json:"power_limit"`
	Persistence snapshot.Value `json:"persistence_mode,omitempty"`
}

// ProcessEntry represents a single process holding GPU memory.
type ProcessEntry struct {
	PID         int32          `json:"pid"`
	DeviceIndex int            `json:"device_index"`
	Type        string         `json:"type,omitempty"` // C (compute), G (graphics), C+G
	Username    snapshot.Value `json:"username"`
	Command     snapshot.Value `json:"command"`
	GPUMemory   snapshot.Value `json:"gpu_memory"`   // bytes
	CPUPercent  snapshot.Value `json:"cpu_percent"`  // percent
	HostMemory  snapshot.Value `json:"host_memory"`  // RSS bytes
	RunningTime snapshot.Value `json:"running_time"` // seconds
}
