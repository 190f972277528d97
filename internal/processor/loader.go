// Package processor provides async dump loading for the TUI.
package processor

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/model"
)

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// LoadResultMsg is sent when a dump file has been loaded.
type LoadResultMsg struct {
	Path string
	Dump *model.Dump
	Err  error
}

// FileListMsg is sent when the dump list has been refreshed.
type FileListMsg struct {
	Files []config.DumpFile
	Err   error
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// LoadDumpCmd creates a command to load a dump file asynchronously.
func LoadDumpCmd(path string) tea.Cmd {
	return func() tea.Msg {
		dump, err := model.LoadDump(path)
		return LoadResultMsg{
			Path: path,
			Dump: dump,
			Err:  err,
		}
	}
}

// RefreshFilesCmd creates a command that lists dumps in every directory of
// paths. Missing directories are skipped; other failures are reported after
// the listing completes.
func RefreshFilesCmd(paths []string) tea.Cmd {
	return func() tea.Msg {
		return ListFiles(paths)
	}
}

// ListFiles is the synchronous body of RefreshFilesCmd.
func ListFiles(paths []string) FileListMsg {
	var (
		all  []config.DumpFile
		errs []error
	)
	for _, dir := range paths {
		files, err := config.FindDumpFiles(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("%s: %w", dir, err))
			}
			continue
		}
		all = append(all, files...)
	}
	config.SortNewestFirst(all)
	return FileListMsg{Files: all, Err: errors.Join(errs...)}
}
