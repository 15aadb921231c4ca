// Package manifest holds the ordered table of source files a project is
// expected to contain, and loads overrides of that table from TOML.
package manifest

import (
	"path"
	"strings"
)

// Category groups entries for display. It has no effect on checking.
type Category string

// Known categories.
const (
	CategoryModels     Category = "models"
	CategoryServices   Category = "services"
	CategoryViewModels Category = "viewmodels"
	CategoryViews      Category = "views"
	CategoryUtilities  Category = "utilities"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryModels,
	CategoryServices,
	CategoryViewModels,
	CategoryViews,
	CategoryUtilities,
}

// Label returns the heading used when listing entries of this category.
func (c Category) Label() string {
	switch c {
	case CategoryModels:
		return "Models"
	case CategoryServices:
		return "Services"
	case CategoryViewModels:
		return "ViewModels"
	case CategoryViews:
		return "Views"
	case CategoryUtilities:
		return "Utilities"
	case "":
		return "Uncategorized"
	}
	return string(c)
}

// Entry is one expected file: a path relative to the project folder and the
// name it is shown under.
type Entry struct {
	Path     string   `toml:"path"`
	Name     string   `toml:"name"`
	Category Category `toml:"category,omitempty"`
}

// Manifest is the ordered set of entries plus the roots they resolve against.
// Files live at BaseDir/Project/Entry.Path.
type Manifest struct {
	BaseDir string  `toml:"base_dir"`
	Project string  `toml:"project"`
	Entries []Entry `toml:"entries"`
}

const (
	// DefaultBaseDir is the repository checkout that holds the project
	// folder; Xcode nests a source folder of the same name inside it.
	DefaultBaseDir = "/Users/vladislav_k/Code/Personal/MoveIt"
	// DefaultProject is the project folder name, also used as the Xcode
	// project and target name in the instructions.
	DefaultProject = "MoveIt"
)

// Default returns the compiled-in manifest. Each call returns a fresh copy.
func Default() *Manifest {
	return &Manifest{
		BaseDir: DefaultBaseDir,
		Project: DefaultProject,
		Entries: []Entry{
			{Path: "Models/Phase.swift", Name: "Phase.swift", Category: CategoryModels},
			{Path: "Models/Schedule.swift", Name: "Schedule.swift", Category: CategoryModels},
			{Path: "Models/SessionRecord.swift", Name: "SessionRecord.swift", Category: CategoryModels},
			{Path: "Models/PendingTransition.swift", Name: "PendingTransition.swift", Category: CategoryModels},
			{Path: "Models/DailyStats.swift", Name: "DailyStats.swift", Category: CategoryModels},

			{Path: "Services/TimerEngine.swift", Name: "TimerEngine.swift", Category: CategoryServices},
			{Path: "Services/SessionManager.swift", Name: "SessionManager.swift", Category: CategoryServices},
			{Path: "Services/TransitionManager.swift", Name: "TransitionManager.swift", Category: CategoryServices},
			{Path: "Services/NotificationService.swift", Name: "NotificationService.swift", Category: CategoryServices},

			{Path: "ViewModels/PhaseCoordinator.swift", Name: "PhaseCoordinator.swift", Category: CategoryViewModels},

			{Path: "Views/MenuBarView.swift", Name: "MenuBarView.swift", Category: CategoryViews},
			{Path: "Views/SettingsView.swift", Name: "SettingsView.swift", Category: CategoryViews},
			{Path: "Views/Components/HeaderView.swift", Name: "HeaderView.swift", Category: CategoryViews},
			{Path: "Views/Components/ActiveSessionView.swift", Name: "ActiveSessionView.swift", Category: CategoryViews},
			{Path: "Views/Components/StatsView.swift", Name: "StatsView.swift", Category: CategoryViews},
			{Path: "Views/Components/ControlsView.swift", Name: "ControlsView.swift", Category: CategoryViews},
			{Path: "Views/Components/FooterView.swift", Name: "FooterView.swift", Category: CategoryViews},

			{Path: "Utilities/TimeFormatter.swift", Name: "TimeFormatter.swift", Category: CategoryUtilities},
		},
	}
}

// ByCategory groups entries by category, preserving manifest order within
// each group. Categories outside the known set are appended in order of
// first appearance.
func (m *Manifest) ByCategory() ([]Category, map[Category][]Entry) {
	groups := make(map[Category][]Entry)
	var extra []Category
	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}
	for _, e := range m.Entries {
		if _, ok := groups[e.Category]; !ok && !known[e.Category] {
			extra = append(extra, e.Category)
		}
		groups[e.Category] = append(groups[e.Category], e)
	}

	var order []Category
	for _, c := range Categories {
		if len(groups[c]) > 0 {
			order = append(order, c)
		}
	}
	return append(order, extra...), groups
}

// cleanRel normalizes an entry path to slash form without a leading "./".
func cleanRel(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return ""
	}
	return path.Clean(p)
}
