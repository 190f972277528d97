package model

import (
	"strconv"
	"time"

	"github.com/ijuttt/nvview/internal/snapshot"
)

// Snapshot class names used when printing device and process records.
const (
	DeviceSnapshotName  = "DeviceSnapshot"
	ProcessSnapshotName = "ProcessSnapshot"
)

// MemoryPercent returns used/total memory as a percentage, or NA when either
// side is unavailable or the total is zero.
func (d *DeviceEntry) MemoryPercent() snapshot.Value {
	used, ok1 := d.MemoryUsed.Float64()
	total, ok2 := d.MemoryTotal.Float64()
	if !ok1 || !ok2 || total <= 0 {
		return snapshot.NA()
	}
	return snapshot.Float(100 * used / total)
}

// MemoryFree returns total minus used memory in bytes, or NA.
func (d *DeviceEntry) MemoryFree() snapshot.Value {
	used, ok1 := d.MemoryUsed.Int64()
	total, ok2 := d.MemoryTotal.Int64()
	if !ok1 || !ok2 {
		return snapshot.NA()
	}
	return snapshot.Int(total - used)
}

// DisplayName returns the device name, or "GPU <index>" when unknown.
func (d *DeviceEntry) DisplayName() string {
	if s, ok := d.Name.Str(); ok && s != "" {
		return s
	}
	return "GPU " + strconv.Itoa(d.Index)
}

// Snapshot captures the entry as a DeviceSnapshot with real=index.
func (d *DeviceEntry) Snapshot() snapshot.Snapshot {
	return snapshot.MustNew(snapshot.Int(int64(d.Index)),
		snapshot.F("name", orNA(d.Name)),
		snapshot.F("bus_id", orNA(d.BusID)),
		snapshot.F("gpu_utilization", orNA(d.GPUUtil)),
		snapshot.F("memory_utilization", orNA(d.MemoryUtil)),
		snapshot.F("memory_used", orNA(d.MemoryUsed)),
		snapshot.F("memory_total", orNA(d.MemoryTotal)),
		snapshot.F("memory_free", d.MemoryFree()),
		snapshot.F("memory_percent", d.MemoryPercent()),
		snapshot.F("temperature", orNA(d.Temperature)),
		snapshot.F("fan_speed", orNA(d.FanSpeed)),
		snapshot.F("power_draw", orNA(d.PowerDraw)),
		snapshot.F("power_limit", orNA(d.PowerLimit)),
	).WithName(DeviceSnapshotName)
}

// Runtime returns how long the process has been running, or NA.
func (p *ProcessEntry) Runtime() snapshot.Value {
	if d, ok := p.RunningTime.AsDuration(); ok {
		return snapshot.Duration(d.Truncate(time.Second))
	}
	return snapshot.NA()
}

// Snapshot captures the entry as a ProcessSnapshot with real=pid.
func (p *ProcessEntry) Snapshot() snapshot.Snapshot {
	typ := snapshot.NA()
	if p.Type != "" {
		typ = snapshot.String(p.Type)
	}
	return snapshot.MustNew(snapshot.Int(int64(p.PID)),
		snapshot.F("device", p.DeviceIndex),
		snapshot.F("type", typ),
		snapshot.F("username", orNA(p.Username)),
		snapshot.F("command", orNA(p.Command)),
		snapshot.F("gpu_memory", orNA(p.GPUMemory)),
		snapshot.F("cpu_percent", orNA(p.CPUPercent)),
		snapshot.F("host_memory", orNA(p.HostMemory)),
		snapshot.F("running_time", p.Runtime()),
	).WithName(ProcessSnapshotName)
}

// ProcessesOn returns the processes running on the given device.
func (s *Sample) ProcessesOn(deviceIndex int) []ProcessEntry {
	var procs []ProcessEntry
	for _, p := range s.Processes {
		if p.DeviceIndex == deviceIndex {
			procs = append(procs, p)
		}
	}
	return procs
}

// Time parses the sample timestamp. The zero time means unknown.
func (s *Sample) Time() time.Time {
	return parseTime(s.Timestamp)
}

// CreatedTime parses the dump creation time. The zero time means unknown.
func (d *Dump) CreatedTime() time.Time {
	return parseTime(d.CreatedAt)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// orNA maps a missing JSON field (nil) to the unavailable sentinel.
func orNA(v snapshot.Value) snapshot.Value {
	if v.IsNil() {
		return snapshot.NA()
	}
	return v
}
