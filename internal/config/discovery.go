package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// -----------------------------------------------------------------------------
// Dump File Discovery
// -----------------------------------------------------------------------------

// DumpFile is a discovered dump with its metadata.
type DumpFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DiscoverLatestDump searches configured paths for the most recent dump file.
// Returns the path to the newest .json file found, or an error if none exist.
func DiscoverLatestDump() (string, error) {
	return latestIn(GetDataPaths())
}

func latestIn(dataPaths []string) (string, error) {
	candidates := listIn(dataPaths)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no dump files found in paths: %v", dataPaths)
	}
	return candidates[0].Path, nil
}

// ListAvailableDumps returns all discovered dump files across all paths,
// newest first.
func ListAvailableDumps() []DumpFile {
	return listIn(GetDataPaths())
}

func listIn(dataPaths []string) []DumpFile {
	var all []DumpFile
	for _, dir := range dataPaths {
		files, err := FindDumpFiles(dir)
		if err != nil {
			// Directory might not exist; continue searching
			continue
		}
		all = append(all, files...)
	}

	SortNewestFirst(all)
	return all
}

// SortNewestFirst orders files by modification time, newest first.
func SortNewestFirst(files []DumpFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
}

// FindDumpFiles returns all .json files in the given directory.
func FindDumpFiles(dir string) ([]DumpFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []DumpFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != DumpFileExtension {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, DumpFile{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    fileInfo.Size(),
			ModTime: fileInfo.ModTime(),
		})
	}

	return files, nil
}
