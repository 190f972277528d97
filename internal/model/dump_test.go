/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDump(t *testing.T) {
	dump, err := LoadDump("testdata/dump.json")
	if err != nil {
		t.Fatalf("LoadDump failed: %v", err)
	}

	if dump.Hostname != "gpu-node-07" {
		t.Errorf("Hostname = %q, want gpu-node-07", dump.Hostname)
	}
	if len(dump.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(dump.Samples))
	}

	dev := dump.Samples[0].Devices[1]
	if !dev.GPUUtil.IsNA() || !dev.MemoryUsed.IsNA() {
		t.Errorf("device 1 metrics should be N/A, got %v / %v", dev.GPUUtil, dev.MemoryUsed)
	}
	if !dev.BusID.IsNil() {
		t.Errorf("missing bus_id should decode as nil, got %v", dev.BusID.Kind())
	}

	want := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	if got := dump.CreatedTime(); !got.Equal(want) {
		t.Errorf("CreatedTime() = %v, want %v", got, want)
	}
}

func TestLoadDumpErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"schema_version":1,"samples":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDump(empty); !errors.Is(err, ErrEmptyDump) {
		t.Errorf("empty dump error = %v, want ErrEmptyDump", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"samples": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDump(broken); err == nil || !strings.Contains(err.Error(), "cannot parse JSON") {
		t.Errorf("broken dump error = %v", err)
	}

	if _, err := LoadDump(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing dump error = %v, want ErrNotExist", err)
	}
}

func TestValidateDuplicateDevice(t *testing.T) {
	d := Dump{Samples: []Sample{{Devices: []DeviceEntry{{Index: 0}, {Index: 0}}}}}
	if err := d.Validate(); err == nil {
		t.Error("expected duplicate index error")
	}
}

func TestDeviceSnapshot(t *testing.T) {
	var dev DeviceEntry
	input := `{
		"index": 2,
		"name": "Tesla T4",
		"gpu_util": 87,
		"memory_used": 1073741824,
		"memory_total": 4294967296,
		"temperature": "N/A"
	}`
	if err := json.Unmarshal([]byte(input), &dev); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if pct, ok := dev.MemoryPercent().Float64(); !ok || pct != 25 {
		t.Errorf("MemoryPercent() = %v, %v; want 25", pct, ok)
	}

	snap := dev.Snapshot()
	if !snap.Truthy() {
		t.Error("device snapshot should be truthy")
	}
	if snap.Real().Repr() != "2" {
		t.Errorf("real = %s, want 2", snap.Real().Repr())
	}
	if !snap.Value("temperature").IsNA() || !snap.Value("fan_speed").IsNA() {
		t.Error("unavailable and missing metrics should be N/A")
	}

	s := snap.String()
	if !strings.HasPrefix(s, "DeviceSnapshot(real=2, bus_id=") {
		t.Errorf("String() = %s", s)
	}
	if !strings.Contains(s, `name="Tesla T4"`) || !strings.Contains(s, "memory_percent=25.0") {
		t.Errorf("String() = %s", s)
	}
}

func TestProcessSnapshot(t *testing.T) {
	p := ProcessEntry{PID: 99, DeviceIndex: 1}
	if err := json.Unmarshal([]byte(`{"pid":99,"device_index":1,"running_time":61.7,"username":"bob"}`), &p); err != nil {
		t.Fatal(err)
	}

	d, ok := p.Runtime().AsDuration()
	if !ok || d != 61*time.Second {
		t.Errorf("Runtime() = %v, %v; want 1m1s", d, ok)
	}

	s := p.Snapshot().String()
	want := `ProcessSnapshot(real=99, command="N/A", cpu_percent="N/A", device=1, gpu_memory="N/A", host_memory="N/A", running_time=1m1s, type="N/A", username="bob")`
	if s != want {
		t.Errorf("String() =\n%s\nwant\n%s", s, want)
	}
}

func TestProcessesOn(t *testing.T) {
	s := Sample{Processes: []ProcessEntry{
		{PID: 1, DeviceIndex: 0},
		{PID: 2, DeviceIndex: 1},
		{PID: 3, DeviceIndex: 0},
	}}
	got := s.ProcessesOn(0)
	if len(got) != 2 || got[0].PID != 1 || got[1].PID != 3 {
		t.Errorf("ProcessesOn(0) = %+v", got)
	}
	if len(s.ProcessesOn(5)) != 0 {
		t.Error("ProcessesOn(5) should be empty")
	}
}
