/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package analysis provides viewer-side computation for GPU dump data.
// This layer sits between the raw model types and presentation, computing
// derived metrics and time-series data across samples.
package analysis

import "github.com/ijuttt/nvview/internal/model"

// Metric defines a pluggable data extractor for device analysis.
// Extract reports false when the reading is unavailable.
type Metric interface {
	Name() string
	Unit() string
	Extract(dev *model.DeviceEntry) (float64, bool)
}

// UtilMetric extracts GPU utilization percentage.
type UtilMetric struct{}

func (UtilMetric) Name() string { return "GPU" }
func (UtilMetric) Unit() string { return "%" }
func (UtilMetric) Extract(d *model.DeviceEntry) (float64, bool) {
	return d.GPUUtil.Float64()
}

// MemoryMetric extracts memory usage percentage.
type MemoryMetric struct{}

func (MemoryMetric) Name() string { return "MEM" }
func (MemoryMetric) Unit() string { return "%" }
func (MemoryMetric) Extract(d *model.DeviceEntry) (float64, bool) {
	return d.MemoryPercent().Float64()
}

// TemperatureMetric extracts core temperature in Celsius.
type TemperatureMetric struct{}

func (TemperatureMetric) Name() string { return "Temp" }
func (TemperatureMetric) Unit() string { return "C" }
func (TemperatureMetric) Extract(d *model.DeviceEntry) (float64, bool) {
	return d.Temperature.Float64()
}

// PowerMetric extracts power draw in watts.
type PowerMetric struct{}

func (PowerMetric) Name() string { return "Power" }
func (PowerMetric) Unit() string { return "W" }
func (PowerMetric) Extract(d *model.DeviceEntry) (float64, bool) {
	mw, ok := d.PowerDraw.Float64()
	return mw / 1000, ok
}
