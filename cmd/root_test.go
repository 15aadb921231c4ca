package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/sourcecheck/internal/manifest"
	"github.com/papapumpkin/sourcecheck/internal/report"
)

// runCLI executes the root command against fs and returns stdout and stderr.
// Not parallel-safe: it swaps package state and shared flag values.
func runCLI(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	prepareCLI(t, fs, &out, &errOut, args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// prepareCLI points the root command at fs, out, errOut and args, restoring
// package state when the test ends.
func prepareCLI(t *testing.T, fs afero.Fs, out, errOut io.Writer, args []string) {
	t.Helper()

	prev := appFs
	appFs = fs
	t.Cleanup(func() {
		appFs = prev
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(initCmd.Flags())
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetContext(context.Background())
		watchCmd.SetContext(context.Background())
	})

	if args == nil {
		args = []string{}
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func countLines(out, prefix string) int {
	n := 0
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestCommands_Registered(t *testing.T) {
	want := []string{"check", "list", "validate", "init", "watch"}
	have := make(map[string]*cobra.Command)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = c
	}
	for _, name := range want {
		if _, ok := have[name]; !ok {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestRoot_Flags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "base-dir", "project", "manifest", "strict"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q", name)
		}
	}
}

func TestRoot_DefaultRootsMatchCheckoutLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/Users/vladislav_k/Code/Personal/MoveIt/MoveIt/Models/Phase.swift", nil, 0o644))
	// One level too high: the checkout root, not the source folder.
	require.NoError(t, afero.WriteFile(fs, "/Users/vladislav_k/Code/Personal/MoveIt/Models/Schedule.swift", nil, 0o644))

	out, _, err := runCLI(t, fs)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ MoveIt/Models/Phase.swift\n")
	assert.Contains(t, out, "❌ MoveIt/Models/Schedule.swift - NOT FOUND\n")
	assert.Equal(t, 1, countLines(out, "✅"))
}

func TestRoot_NoArgsRunsCheck(t *testing.T) {
	out, _, err := runCLI(t, afero.NewMemMapFs())
	require.NoError(t, err, "missing files never fail without --strict")

	entries := len(manifest.Default().Entries)
	assert.True(t, strings.HasPrefix(out, report.Header+"\n"))
	assert.Equal(t, entries, countLines(out, "❌ MoveIt/"))
	assert.Equal(t, 0, countLines(out, "✅"))
	assert.True(t, strings.HasSuffix(out, report.Instructions("MoveIt")))
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, afero.NewMemMapFs(), "extra")
	require.Error(t, err)
}

func TestCheck_CustomRoots(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/code/App/Models/Phase.swift", nil, 0o644))

	out, _, err := runCLI(t, fs, "check", "--base-dir", "/code", "--project", "App")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ App/Models/Phase.swift\n")
	assert.Contains(t, out, "❌ App/Models/Schedule.swift - NOT FOUND\n")
	assert.Contains(t, out, "1. Open App.xcodeproj in Xcode\n")
}

func TestCheck_ManifestFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `base_dir = "/work"
project = "Notes"

[[entries]]
path = "Models/Note.swift"

[[entries]]
path = "Views/NoteView.swift"
`
	require.NoError(t, afero.WriteFile(fs, "/etc/notes.toml", []byte(data), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/work/Notes/Models/Note.swift", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/work/Notes/Views/NoteView.swift", nil, 0o644))

	out, _, err := runCLI(t, fs, "check", "--manifest", "/etc/notes.toml", "--strict")
	require.NoError(t, err)
	assert.Equal(t, 2, countLines(out, "✅ Notes/"))
	assert.Equal(t, 0, countLines(out, "❌"))
}

func TestCheck_StrictFailsOnMissing(t *testing.T) {
	out, _, err := runCLI(t, afero.NewMemMapFs(), "check", "--strict")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFiles))
	assert.True(t, strings.HasSuffix(out, report.Instructions("MoveIt")), "report is printed in full before failing")
}

func TestCheck_BadManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.toml", []byte("entries = ["), 0o644))

	out, _, err := runCLI(t, fs, "--manifest", "bad.toml")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestList_GroupsByCategory(t *testing.T) {
	out, _, err := runCLI(t, afero.NewMemMapFs(), "list")
	require.NoError(t, err)

	models := strings.Index(out, "Models\n")
	utilities := strings.Index(out, "Utilities\n")
	require.NotEqual(t, -1, models)
	require.NotEqual(t, -1, utilities)
	assert.Less(t, models, utilities)
	assert.Contains(t, out, "  Views/Components/HeaderView.swift (HeaderView.swift)\n")
}

func TestValidate_Default(t *testing.T) {
	_, errOut, err := runCLI(t, afero.NewMemMapFs(), "validate")
	require.NoError(t, err)
	assert.Contains(t, errOut, "✓ manifest 18 entries, no errors")
}

func TestValidate_Duplicate(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `[[entries]]
path = "A.swift"

[[entries]]
path = "A.swift"
`
	require.NoError(t, afero.WriteFile(fs, "dup.toml", []byte(data), 0o644))

	_, errOut, err := runCLI(t, fs, "validate", "--manifest", "dup.toml")
	require.ErrorIs(t, err, ErrInvalidManifest)
	assert.Contains(t, errOut, "✗ entry 1 (A.swift): duplicate path")
}

func TestInit_WritesManifest(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, errOut, err := runCLI(t, fs, "init", "--manifest", "out/files.toml", "--project", "App")
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote out/files.toml (18 entries)")

	m, err := manifest.Load(fs, "out/files.toml")
	require.NoError(t, err)
	assert.Equal(t, "App", m.Project)
	assert.Len(t, m.Entries, 18)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "files.toml", []byte("project = \"Keep\"\n"), 0o644))

	_, _, err := runCLI(t, fs, "init", "--manifest", "files.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCLI(t, fs, "init", "--manifest", "files.toml", "--force")
	require.NoError(t, err)
	m, err := manifest.Load(fs, "files.toml")
	require.NoError(t, err)
	assert.Equal(t, manifest.DefaultProject, m.Project)
}
