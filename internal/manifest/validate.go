package manifest

import (
	"fmt"
	"path"
	"strings"
)

// Validate checks the manifest invariants: every entry has a path and a name,
// paths are unique, relative, and stay inside the project folder, and
// categories (when set) are known. It returns all problems found.
func Validate(m *Manifest) []ValidationError {
	var errs []ValidationError

	if m.Project == "" {
		errs = append(errs, ValidationError{
			Index: -1,
			Field: "project",
			Err:   fmt.Errorf("%w: project", ErrMissingField),
		})
	}

	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	seen := make(map[string]int) // cleaned path → first index
	for i, e := range m.Entries {
		if e.Path == "" {
			errs = append(errs, ValidationError{
				Index: i,
				Field: "path",
				Err:   fmt.Errorf("%w: path", ErrMissingField),
			})
			continue
		}
		if e.Name == "" {
			errs = append(errs, ValidationError{
				Index: i,
				Path:  e.Path,
				Field: "name",
				Err:   fmt.Errorf("%w: name", ErrMissingField),
			})
		}

		rel := cleanRel(e.Path)
		switch {
		case path.IsAbs(rel) || isWindowsAbs(e.Path):
			errs = append(errs, ValidationError{
				Index: i,
				Path:  e.Path,
				Field: "path",
				Err:   ErrAbsolutePath,
			})
		case rel == ".." || strings.HasPrefix(rel, "../"):
			errs = append(errs, ValidationError{
				Index: i,
				Path:  e.Path,
				Field: "path",
				Err:   ErrEscapesProject,
			})
		}

		if prev, ok := seen[rel]; ok {
			errs = append(errs, ValidationError{
				Index: i,
				Path:  e.Path,
				Field: "path",
				Err:   fmt.Errorf("%w: %q already listed at entry %d", ErrDuplicatePath, e.Path, prev),
			})
		} else {
			seen[rel] = i
		}

		if e.Category != "" && !known[e.Category] {
			errs = append(errs, ValidationError{
				Index: i,
				Path:  e.Path,
				Field: "category",
				Err:   fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category),
			})
		}
	}

	return errs
}

// isWindowsAbs reports whether p starts with a drive letter, e.g. "C:/".
func isWindowsAbs(p string) bool {
	return len(p) >= 2 && p[1] == ':' &&
		(p[0] >= 'a' && p[0] <= 'z' || p[0] >= 'A' && p[0] <= 'Z')
}
