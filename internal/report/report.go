// Package report checks manifest entries against the filesystem and renders
// the plain-text existence report with the follow-up IDE instructions.
package report

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/papapumpkin/sourcecheck/internal/manifest"
)

// Result is the outcome of probing a single manifest entry.
type Result struct {
	Entry       manifest.Entry
	DisplayPath string // Project-relative path shown in the report, e.g. "MoveIt/Models/Phase.swift"
	FullPath    string // Absolute location that was probed
	Found       bool
}

// Summary counts found and missing entries.
type Summary struct {
	Found   int
	Missing int
}

// Total returns the number of entries checked.
func (s Summary) Total() int {
	return s.Found + s.Missing
}

// Checker probes manifest entries on a filesystem. It never writes.
type Checker struct {
	fs afero.Fs
}

// NewChecker returns a Checker reading from fs. A nil fs means the OS filesystem.
func NewChecker(fs afero.Fs) *Checker {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Checker{fs: fs}
}

// Check probes every entry of m in order and returns one Result per entry.
// An entry is found when a regular file or directory exists at
// BaseDir/Project/Path. Any stat failure, including a missing base directory
// or a permission error, reports the entry as not found.
func (c *Checker) Check(m *manifest.Manifest) []Result {
	results := make([]Result, 0, len(m.Entries))
	for _, e := range m.Entries {
		full := filepath.Join(m.BaseDir, m.Project, filepath.FromSlash(e.Path))
		results = append(results, Result{
			Entry:       e,
			DisplayPath: m.Project + "/" + e.Path,
			FullPath:    full,
			Found:       c.exists(full),
		})
	}
	return results
}

func (c *Checker) exists(p string) bool {
	info, err := c.fs.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.IsDir()
}

// Summarize counts the found and missing results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Found {
			s.Found++
		} else {
			s.Missing++
		}
	}
	return s
}
