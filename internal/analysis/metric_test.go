/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package analysis

import (
	"testing"

	"github.com/ijuttt/nvview/internal/model"
	"github.com/ijuttt/nvview/internal/snapshot"
)

func TestPowerMetricExtract(t *testing.T) {
	m := PowerMetric{}

	if m.Name() != "Power" {
		t.Errorf("Name() = %q, want \"Power\"", m.Name())
	}
	if m.Unit() != "W" {
		t.Errorf("Unit() = %q, want \"W\"", m.Unit())
	}

	dev := &model.DeviceEntry{PowerDraw: snapshot.Int(118000)}
	got, ok := m.Extract(dev)
	if !ok || got != 118 {
		t.Errorf("Extract() = %f, %v; want 118", got, ok)
	}

	dev.PowerDraw = snapshot.NA()
	if _, ok := m.Extract(dev); ok {
		t.Error("Extract() on N/A should not be ok")
	}
}

func TestUtilTimelineBuilds(t *testing.T) {
	dump := &model.Dump{
		Samples: []model.Sample{
			{Devices: []model.DeviceEntry{{Index: 0, GPUUtil: snapshot.Int(10)}}},
			{Devices: []model.DeviceEntry{{Index: 0, GPUUtil: snapshot.NA()}}},
			{Devices: []model.DeviceEntry{{Index: 1, GPUUtil: snapshot.Int(99)}}},
			{Devices: []model.DeviceEntry{{Index: 0, GPUUtil: snapshot.Float(72.5)}}},
			{Devices: []model.DeviceEntry{{Index: 0, GPUUtil: snapshot.Int(45)}}},
		},
	}

	tl := BuildUtilTimeline(dump, 0)

	if len(tl.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(tl.Points))
	}
	if tl.Missing != 2 {
		t.Errorf("Missing = %d, want 2", tl.Missing)
	}
	if tl.MinValue != 10 {
		t.Errorf("MinValue = %f, want 10", tl.MinValue)
	}
	if tl.MaxValue != 72.5 {
		t.Errorf("MaxValue = %f, want 72.5", tl.MaxValue)
	}

	expected := []float64{10, 72.5, 45}
	for i, v := range tl.Values() {
		if v != expected[i] {
			t.Errorf("Values()[%d] = %f, want %f", i, v, expected[i])
		}
	}

	if idx := tl.PointIndex(3); idx != 1 {
		t.Errorf("PointIndex(3) = %d, want 1", idx)
	}
	if idx := tl.PointIndex(1); idx != -1 {
		t.Errorf("PointIndex(1) = %d, want -1", idx)
	}
}

func TestTimelineAllMissing(t *testing.T) {
	dump := &model.Dump{Samples: []model.Sample{{}}}
	tl := BuildMemoryTimeline(dump, 0)
	if len(tl.Points) != 0 || tl.MinValue != 0 || tl.MaxValue != 0 {
		t.Errorf("unexpected timeline: %+v", tl)
	}
}

func TestDefaultMetricsIncludesPower(t *testing.T) {
	metrics := DefaultMetrics()
	found := false
	for _, m := range metrics {
		if m.Name() == "Power" {
			found = true
			break
		}
	}
	if !found {
		t.Error("DefaultMetrics() does not include PowerMetric")
	}
}
