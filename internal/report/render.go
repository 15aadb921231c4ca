package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	markFound   = "✅"
	markMissing = "❌"
	rule        = "=================================================="
)

// Header is the first line of every report.
const Header = "New Swift files to add to Xcode project:"

// Line formats the check line for a single result.
func Line(r Result) string {
	if r.Found {
		return markFound + " " + r.DisplayPath
	}
	return markMissing + " " + r.DisplayPath + " - NOT FOUND"
}

// Instructions returns the manual steps for importing the files into the
// Xcode project named project. The block starts with a blank line.
func Instructions(project string) string {
	var b strings.Builder
	b.WriteString("\nTo add these files to Xcode:\n")
	fmt.Fprintf(&b, "1. Open %s.xcodeproj in Xcode\n", project)
	fmt.Fprintf(&b, "2. Right-click on the %s folder in the project navigator\n", project)
	fmt.Fprintf(&b, "3. Select 'Add Files to %s...'\n", project)
	b.WriteString("4. Navigate to each folder (Models, Services, etc.) and add all .swift files\n")
	b.WriteString("5. Make sure 'Copy items if needed' is UNCHECKED\n")
	fmt.Fprintf(&b, "6. Make sure 'Add to targets: %s' is CHECKED\n", project)
	b.WriteString("\nAlternatively, drag and drop the folders into Xcode project navigator\n")
	return b.String()
}

// Render writes the full report for results to w: the header, one check line
// per result in order, a closing rule, then the instruction block once.
func Render(w io.Writer, results []Result, project string) error {
	var b strings.Builder
	b.WriteString(Header + "\n")
	b.WriteString(rule + "\n")
	for _, r := range results {
		b.WriteString(Line(r) + "\n")
	}
	b.WriteString("\n" + rule + "\n")
	b.WriteString(Instructions(project))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
