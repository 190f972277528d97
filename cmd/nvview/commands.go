package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ijuttt/nvview/internal/color"
	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/format"
	"github.com/ijuttt/nvview/internal/model"
	"github.com/ijuttt/nvview/internal/render"
	"github.com/ijuttt/nvview/internal/snapshot"
)

// flagInt reads an int flag, falling back to def when the command lacks it
// or the value is not positive.
func flagInt(cmd *cobra.Command, name string, def int) int {
	v, err := cmd.Flags().GetInt(name)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func (e *env) runShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		latest, err := config.DiscoverLatestDump()
		if err != nil {
			return err
		}
		path = latest
	}

	dump, err := model.LoadDump(path)
	if err != nil {
		return err
	}
	e.log.Info("dump loaded", "path", path, "samples", len(dump.Samples))

	sample, err := cmd.Flags().GetInt("sample")
	if err != nil {
		sample = 1
	}
	if sample < 1 || sample > len(dump.Samples) {
		return fmt.Errorf("sample %d out of range (dump has %d)", sample, len(dump.Samples))
	}
	idx := sample - 1
	width := flagInt(cmd, "width", e.settings.BarWidth)
	nameWidth := flagInt(cmd, "name-width", e.settings.NameWidth)

	out := cmd.OutOrStdout()
	s := &dump.Samples[idx]

	fmt.Fprintln(out, e.color.Colored(render.Header(dump, idx, time.Now()), color.None, color.Bold))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Section("DEVICES", e.color))
	for i := range s.Devices {
		fmt.Fprint(out, render.Device(&s.Devices[i], width, e.color))
	}

	// The COMMAND column gets roughly the bar width.
	tableWidth := width + nameWidth + render.PIDWidth + render.GPUMemWidth + render.CPUWidth + render.TimeWidth
	for i := range s.Devices {
		d := &s.Devices[i]
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Section(fmt.Sprintf("PROCESSES ON GPU %d", d.Index), e.color))
		fmt.Fprint(out, render.ProcessTable(s.ProcessesOn(d.Index), tableWidth, nameWidth, e.color))
	}

	if snapshots, _ := cmd.Flags().GetBool("snapshots"); snapshots {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Section("SNAPSHOTS", e.color))
		fmt.Fprint(out, render.Snapshots(s))
	}
	return nil
}

func (e *env) runBar(cmd *cobra.Command, args []string) error {
	pct, na, err := format.ParsePercent(args[1])
	if err != nil {
		return err
	}
	v := snapshot.Float(pct)
	if na {
		v = snapshot.NA()
	}

	width := flagInt(cmd, "width", e.settings.BarWidth)
	fmt.Fprintln(cmd.OutOrStdout(), render.Bar(args[0], v, width, e.color))
	return nil
}

func (e *env) runCut(cmd *cobra.Command, args []string) error {
	maxLen, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid max-len %q: %w", args[1], err)
	}
	pad, _ := cmd.Flags().GetString("pad")
	alignFlag, _ := cmd.Flags().GetString("align")
	align, err := format.ParseAlign(alignFlag)
	if err != nil {
		return err
	}

	s, err := format.CutStringWith(args[0], maxLen, pad, align)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func (e *env) runBytes(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		s, err := format.BytesToHuman(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

// runDuration accepts plain seconds ("3723", "1.5") or Go durations ("90m").
func (e *env) runDuration(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		var v any = arg
		if secs, err := strconv.ParseFloat(arg, 64); err == nil {
			v = snapshot.Float(secs)
		}
		s, err := format.TimedeltaToHuman(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

func (e *env) runPaths(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, render.Section("SEARCH PATHS", e.color))
	for i, p := range config.GetDataPaths() {
		fmt.Fprintf(out, "%d. %s\n", i+1, p)
	}
	fmt.Fprintf(out, "Settings: %s\n", config.SettingsPath())

	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Section("DUMPS", e.color))
	dumps := config.ListAvailableDumps()
	if len(dumps) == 0 {
		fmt.Fprintln(out, "No dumps found")
		return nil
	}
	for _, d := range dumps {
		fmt.Fprintf(out, "%-10s %-16s %s\n",
			humanize.IBytes(uint64(max(d.Size, 0))),
			humanize.Time(d.ModTime),
			d.Path)
	}
	return nil
}
