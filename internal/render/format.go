/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ijuttt/nvview/internal/color"
	"github.com/ijuttt/nvview/internal/format"
	"github.com/ijuttt/nvview/internal/model"
	"github.com/ijuttt/nvview/internal/snapshot"
)

// Section formats a section title.
func Section(title string, c color.Colorizer) string {
	return c.Colored(fmt.Sprintf(SectionHeaderFormat, title), color.None, color.Bold)
}

// Device formats one GPU: name, GPU and MEM bars, memory and sensor lines.
// Every line spans at most width cells.
func Device(d *model.DeviceEntry, width int, c color.Colorizer) string {
	var b strings.Builder

	name := format.CutString(fmt.Sprintf("[%d] %s", d.Index, d.DisplayName()), width)
	b.WriteString(c.Colored(name, color.Cyan, color.Bold))
	b.WriteByte('\n')

	b.WriteString(Bar("GPU", d.GPUUtil, width, c))
	b.WriteByte('\n')
	b.WriteString(Bar("MEM", d.MemoryPercent(), width, c))
	b.WriteByte('\n')

	used, _ := format.BytesToHuman(orNA(d.MemoryUsed))
	total, _ := format.BytesToHuman(orNA(d.MemoryTotal))
	b.WriteString(format.CutString(fmt.Sprintf("Memory: %s / %s", used, total), width))
	b.WriteByte('\n')

	sensors := fmt.Sprintf("Temp: %s  Fan: %s  Power: %s / %s",
		withUnit(d.Temperature, "C"), withUnit(d.FanSpeed, "%"),
		watts(d.PowerDraw), watts(d.PowerLimit))
	b.WriteString(format.CutString(sensors, width))
	b.WriteByte('\n')

	return b.String()
}

// Bar renders a percentage bar of exactly width cells, colored by severity.
// Unreadable values render as N/A.
func Bar(prefix string, pct snapshot.Value, width int, c color.Colorizer) string {
	bar, err := format.MakeBar(prefix, orNA(pct), width)
	if err != nil {
		bar, _ = format.MakeBar(prefix, format.NA, width)
	}

	f, ok := pct.Float64()
	if !ok {
		return c.Colored(bar, color.None, color.Dark)
	}
	fg, attrs := SeverityOf(f).Color()
	return c.Colored(bar, fg, attrs...)
}

// ProcessTable formats processes as PID USER GPU-MEM %CPU TIME COMMAND.
// USER is cut to userWidth. COMMAND fills the rest of width and keeps its
// tail when cut.
func ProcessTable(procs []model.ProcessEntry, width, userWidth int, c color.Colorizer) string {
	var b strings.Builder

	header := fmt.Sprintf("%*s %s %*s %*s %*s %s",
		PIDWidth, "PID", format.FitWidth("USER", userWidth),
		GPUMemWidth, "GPU-MEM", CPUWidth, "%CPU", TimeWidth, "TIME", "COMMAND")
	b.WriteString(c.Colored(format.CutString(header, width), color.None, color.Bold))
	b.WriteByte('\n')

	if len(procs) == 0 {
		b.WriteString(c.Colored(format.CutString(NoProcesses, width), color.None, color.Dark))
		b.WriteByte('\n')
		return b.String()
	}

	fixed := PIDWidth + userWidth + GPUMemWidth + CPUWidth + TimeWidth + 5
	cmdWidth := width - fixed
	if cmdWidth < MinCommandWidth {
		cmdWidth = MinCommandWidth
	}

	for i := range procs {
		b.WriteString(processRow(&procs[i], userWidth, cmdWidth, c))
		b.WriteByte('\n')
	}
	return b.String()
}

func processRow(p *model.ProcessEntry, userWidth, cmdWidth int, c color.Colorizer) string {
	user := format.FitWidth(format.CutString(orNA(p.Username).String(), userWidth), userWidth)
	if p.Username.IsNA() || p.Username.IsNil() {
		user = c.Colored(user, color.None, color.Dark)
	}

	gpuMem, err := format.BytesToHuman(orNA(p.GPUMemory))
	if err != nil {
		gpuMem = format.NA
	}

	cpu := format.NA
	if f, ok := p.CPUPercent.Float64(); ok {
		cpu = fmt.Sprintf("%.1f", f)
	}

	elapsed, err := format.TimedeltaToHuman(p.Runtime())
	if err != nil {
		elapsed = format.NA
	}

	cmd, _ := format.CutStringWith(orNA(p.Command).String(), cmdWidth, format.DefaultPad, format.AlignRight)

	return fmt.Sprintf("%s %s %*s %*s %*s %s",
		c.Colored(fmt.Sprintf("%*d", PIDWidth, p.PID), color.Cyan),
		user, GPUMemWidth, gpuMem, CPUWidth, cpu, TimeWidth, elapsed, cmd)
}

// Header formats the title line. now anchors the "captured ... ago" part.
func Header(dump *model.Dump, sampleIdx int, now time.Time) string {
	parts := []string{"nvview"}
	if dump.Hostname != "" {
		parts = append(parts, dump.Hostname)
	}
	if dump.DriverVersion != "" {
		parts = append(parts, "Driver "+dump.DriverVersion)
	}
	if dump.CUDAVersion != "" {
		parts = append(parts, "CUDA "+dump.CUDAVersion)
	}
	parts = append(parts, fmt.Sprintf("Sample %d/%d", sampleIdx+1, len(dump.Samples)))

	captured := dump.CreatedTime()
	if sampleIdx >= 0 && sampleIdx < len(dump.Samples) {
		if t := dump.Samples[sampleIdx].Time(); !t.IsZero() {
			captured = t
		}
	}
	if !captured.IsZero() {
		parts = append(parts, "captured "+humanize.RelTime(captured, now, "ago", "from now"))
	}
	return strings.Join(parts, " | ")
}

// Snapshots lists every device and process snapshot of s, one per line.
func Snapshots(s *model.Sample) string {
	var b strings.Builder
	for i := range s.Devices {
		b.WriteString(s.Devices[i].Snapshot().String())
		b.WriteByte('\n')
	}
	for i := range s.Processes {
		b.WriteString(s.Processes[i].Snapshot().String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Help returns the help text for the footer.
func Help() string {
	return "Tab: Panel  ↑/k ↓/j: Select  n/p: Sample  r: Reload  ?: Help  q: Quit"
}

func withUnit(v snapshot.Value, unit string) string {
	if _, ok := v.Float64(); !ok {
		return format.NA
	}
	return v.String() + unit
}

// watts converts a milliwatt reading.
func watts(v snapshot.Value) string {
	mw, ok := v.Int64()
	if !ok {
		return format.NA
	}
	return fmt.Sprintf("%dW", mw/1000)
}

func orNA(v snapshot.Value) snapshot.Value {
	if v.IsNil() {
		return snapshot.NA()
	}
	return v
}
