/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/processor"
	"github.com/ijuttt/nvview/internal/render"
	"github.com/ijuttt/nvview/internal/ui/components"
	"github.com/ijuttt/nvview/internal/ui/styles"
)

// Panel identifiers, in Tab order.
const (
	PanelDevices = iota
	PanelProcesses
	PanelDumps
	PanelCount
)

// Layout constants.
const (
	dumpListRatio    = 0.25
	minDumpWidth     = 18
	maxDumpWidth     = 40
	devicePanelRatio = 0.6
)

// Options configures a new App.
type Options struct {
	DumpPath  string   // dump to open first; empty opens the newest found
	DataPaths []string // directories listed in the dump browser; nil uses config.GetDataPaths
	NameWidth int      // USER column width
	Logger    *slog.Logger
}

// App is the main application model.
type App struct {
	// Components
	devices   components.DevicePanel
	processes components.ProcessPanel
	dumps     components.DumpList

	// State
	activePanel int
	currentFile string
	loading     bool
	showHelp    bool
	statusMsg   string
	errMsg      string

	// Layout
	width  int
	height int

	opts Options
	log  *slog.Logger
	now  func() time.Time
	keys KeyMap
}

// NewApp creates a new application instance.
func NewApp(opts Options) App {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.DataPaths == nil {
		opts.DataPaths = config.GetDataPaths()
	}

	a := App{
		devices:     components.NewDevicePanel(),
		processes:   components.NewProcessPanel(),
		dumps:       components.NewDumpList(),
		activePanel: PanelDevices,
		statusMsg:   "Looking for dumps...",
		opts:        opts,
		log:         log,
		now:         time.Now,
		keys:        DefaultKeyMap(),
	}
	if opts.NameWidth > 0 {
		a.processes.SetUserWidth(opts.NameWidth)
	}
	if opts.DumpPath != "" {
		a.loading = true
		a.statusMsg = "Loading " + filepath.Base(opts.DumpPath) + "..."
	}
	a.updateFocus()
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{processor.RefreshFilesCmd(a.opts.DataPaths)}
	if a.opts.DumpPath != "" {
		cmds = append(cmds, processor.LoadDumpCmd(a.opts.DumpPath))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateComponentSizes()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp

		case key.Matches(msg, a.keys.Tab):
			a.activePanel = (a.activePanel + 1) % PanelCount
			a.updateFocus()

		case key.Matches(msg, a.keys.Reload):
			a.statusMsg = "Reloading..."
			cmds = append(cmds, processor.RefreshFilesCmd(a.opts.DataPaths))
			if a.currentFile != "" {
				a.loading = true
				cmds = append(cmds, processor.LoadDumpCmd(a.currentFile))
			}

		case key.Matches(msg, a.keys.NextSample):
			if a.devices.NextSample() {
				a.syncProcesses()
			}

		case key.Matches(msg, a.keys.PrevSample):
			if a.devices.PrevSample() {
				a.syncProcesses()
			}

		case key.Matches(msg, a.keys.Enter):
			if a.activePanel == PanelDumps {
				if path := a.dumps.Selected(); path != "" {
					a.loading = true
					a.statusMsg = "Loading " + filepath.Base(path) + "..."
					cmds = append(cmds, processor.LoadDumpCmd(path))
				}
			}

		default:
			// Forward to active panel
			switch a.activePanel {
			case PanelDevices:
				if cmd := a.devices.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
				a.syncProcesses()
			case PanelProcesses:
				if cmd := a.processes.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			case PanelDumps:
				if cmd := a.dumps.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}

	case processor.FileListMsg:
		a.dumps.SetFiles(msg.Files)
		if msg.Err != nil {
			a.log.Warn("dump listing incomplete", "error", msg.Err)
			a.errMsg = msg.Err.Error()
		}
		a.log.Debug("dump list refreshed", "files", len(msg.Files))

		if a.currentFile == "" && !a.loading {
			if len(msg.Files) == 0 {
				a.statusMsg = "No dumps found"
				break
			}
			path := msg.Files[0].Path
			a.loading = true
			a.statusMsg = "Loading " + filepath.Base(path) + "..."
			cmds = append(cmds, processor.LoadDumpCmd(path))
		}

	case processor.LoadResultMsg:
		a.loading = false
		if msg.Err != nil {
			a.log.Error("dump load failed", "path", msg.Path, "error", msg.Err)
			a.errMsg = msg.Err.Error()
			a.statusMsg = "Failed to load dump"
			break
		}

		keep := -1
		if msg.Path == a.currentFile {
			keep = a.devices.SampleIdx()
		}
		a.currentFile = msg.Path
		a.dumps.SetCurrent(msg.Path)
		a.devices.SetDump(msg.Dump)
		for a.devices.SampleIdx() < keep && a.devices.NextSample() {
		}
		a.syncProcesses()

		a.log.Info("dump loaded", "path", msg.Path, "samples", len(msg.Dump.Samples))
		a.statusMsg = fmt.Sprintf("✓ Loaded %s: %d samples", filepath.Base(msg.Path), len(msg.Dump.Samples))
		a.errMsg = ""
	}

	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else {
		right := lipgloss.JoinVertical(lipgloss.Left, a.devices.View(), a.processes.View())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a.dumps.View(), right))
	}
	b.WriteString("\n")

	b.WriteString(a.renderStatusBar())
	return b.String()
}

// syncProcesses points the process panel at the selected device.
func (a *App) syncProcesses() {
	dev := a.devices.Selected()
	if dev == nil {
		a.processes.Clear()
		return
	}
	a.processes.SetProcesses(dev.Index, a.devices.Sample().ProcessesOn(dev.Index))
}

// layout returns the dump list width, the panel area height and the
// device panel height.
func (a *App) layout() (dumpWidth, bodyHeight, deviceHeight int) {
	dumpWidth = min(max(int(float64(a.width)*dumpListRatio), minDumpWidth), maxDumpWidth)
	bodyHeight = max(a.height-2, 4) // header + status bar
	deviceHeight = int(float64(bodyHeight) * devicePanelRatio)
	return dumpWidth, bodyHeight, deviceHeight
}

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes() {
	dumpWidth, bodyHeight, deviceHeight := a.layout()
	rightWidth := max(a.width-dumpWidth, 1)

	a.dumps.SetSize(dumpWidth, bodyHeight)
	a.devices.SetSize(rightWidth, deviceHeight)
	a.processes.SetSize(rightWidth, bodyHeight-deviceHeight)
	a.updateFocus()
}

// updateFocus sets focus states on components.
func (a *App) updateFocus() {
	a.devices.SetFocused(a.activePanel == PanelDevices)
	a.processes.SetFocused(a.activePanel == PanelProcesses)
	a.dumps.SetFocused(a.activePanel == PanelDumps)
}

// renderHeader renders the title line.
func (a App) renderHeader() string {
	title := "nvview"
	if dump := a.devices.Dump(); dump != nil {
		title = render.Header(dump, a.devices.SampleIdx(), a.now())
	}
	return styles.PanelTitleStyle.Render(title)
}

// renderHelp renders the key binding overlay in place of the panels.
func (a App) renderHelp() string {
	var b strings.Builder
	for i, group := range a.keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(styles.HelpKeyStyle.Render(fmt.Sprintf("%-8s", h.Key)))
			b.WriteString(styles.HelpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}

	_, bodyHeight, _ := a.layout()
	return styles.Panel("Help", b.String(), a.width, bodyHeight, true)
}

// renderStatusBar renders the status bar.
func (a App) renderStatusBar() string {
	var left string
	switch {
	case a.errMsg != "":
		left = styles.ErrorStyle.Render(a.errMsg)
	case a.loading:
		left = styles.LoadingStyle.Render(a.statusMsg)
	default:
		left = styles.HelpDescStyle.Render(a.statusMsg)
	}

	var hints []string
	for _, binding := range a.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, styles.HelpKeyStyle.Render(h.Key)+styles.HelpDescStyle.Render(":"+h.Desc))
	}
	right := strings.Join(hints, "  ")

	// Pad to fill width
	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}
