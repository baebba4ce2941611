package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/mvp-joe/cortex-hover/internal/hover"
)

// Test Plan for CLI commands:
// - hover prints the documentation of the declaration at a position
// - hover --json prints a single result object
// - hover requires --line and --column
// - lookup prints every match and fails when nothing matches
// - list walks directories, skips ignored paths and reports JSON
// - list reports unsupported explicit files as skipped, not failed
// - list picks up every extension a language claims (.pyi, .mjs)
// - --config with a missing file fails
// - config prints resolved per-language documentation settings
// - version prints the build information
//
// Commands share package-level flag state, so these tests are not parallel.

const greeterJava = `package demo;

/**
 * A greeter.
 */
public class Greeter {
    /**
     * Says hello.
     */
    public String greet() {
        return "hi";
    }

    public void wave() {}
}
`

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setupProject writes a config file and a small source tree.
func setupProject(t *testing.T) (root, cfg string) {
	t.Helper()
	root = t.TempDir()

	cfg = filepath.Join(root, "hover.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("cache:\n  max_documents: 8\n"), 0644))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "dep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Greeter.java"), []byte(greeterJava), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "dep", "Dep.java"), []byte(greeterJava), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# demo\n"), 0644))
	return root, cfg
}

func TestHoverCommand(t *testing.T) {
	root, cfg := setupProject(t)
	file := filepath.Join(root, "src", "Greeter.java")

	stdout, _, err := executeCommand(t, "hover", file, "--line", "10", "--column", "9", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "method_declaration greet")
	assert.Contains(t, stdout, "  Says hello.\n")
}

func TestHoverCommand_JSON(t *testing.T) {
	root, cfg := setupProject(t)
	file := filepath.Join(root, "src", "Greeter.java")

	stdout, _, err := executeCommand(t, "hover", file, "-l", "14", "-c", "10", "--json", "--config", cfg)
	require.NoError(t, err)

	var result hover.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "wave", result.Name)
	assert.False(t, result.Documented)
}

func TestHoverCommand_RequiresPosition(t *testing.T) {
	root, cfg := setupProject(t)

	_, _, err := executeCommand(t, "hover", filepath.Join(root, "src", "Greeter.java"), "--line", "3", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}

func TestLookupCommand(t *testing.T) {
	root, cfg := setupProject(t)
	file := filepath.Join(root, "src", "Greeter.java")

	stdout, _, err := executeCommand(t, "lookup", file, "Greeter", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "class_declaration Greeter")
	assert.Contains(t, stdout, "  A greeter.\n")

	_, _, err = executeCommand(t, "lookup", file, "missing", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no declaration named "missing"`)
}

func TestListCommand_JSON(t *testing.T) {
	root, cfg := setupProject(t)

	stdout, stderr, err := executeCommand(t, "list", root, "--json", "--quiet", "--config", cfg)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var results []hover.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, filepath.Join(root, "src", "Greeter.java"), r.File, "node_modules must be ignored")
	}
	assert.Equal(t, "Greeter", results[0].Name)
	assert.True(t, results[1].Documented)
	assert.False(t, results[2].Documented)
}

func TestListCommand_Progress(t *testing.T) {
	root, cfg := setupProject(t)

	stdout, stderr, err := executeCommand(t, "list", filepath.Join(root, "src"), filepath.Join(root, "README.md"), "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(undocumented)")
	assert.Contains(t, stderr, "Documented 2 of 3 declarations in 1 files")
	assert.Contains(t, stderr, "Skipped: 1 unsupported files")
}

func TestListCommand_AllLanguageExtensions(t *testing.T) {
	root, cfg := setupProject(t)
	lib := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(lib, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "stub.pyi"), []byte("# A stub.\ndef stub(): ...\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "util.mjs"), []byte("/** A util. */\nexport function util() {}\n"), 0644))

	stdout, _, err := executeCommand(t, "list", lib, "--json", "--quiet", "--config", cfg)
	require.NoError(t, err)

	var results []hover.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "stub", results[0].Name)
	assert.Equal(t, "A stub.", results[0].Documentation)
	assert.Equal(t, "util", results[1].Name)
	assert.Equal(t, "A util.", results[1].Documentation)
}

func TestConfigFlag_MissingFile(t *testing.T) {
	root, _ := setupProject(t)

	_, _, err := executeCommand(t, "lookup", filepath.Join(root, "src", "Greeter.java"), "Greeter",
		"--config", filepath.Join(root, "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cortex-hover dev")
	assert.Contains(t, stdout, "Git commit: none")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
}

func TestConfigCommand(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, "hover.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
documentation:
  languages:
    java:
      start_tag: "/\\*\\*"
`), 0644))

	stdout, _, err := executeCommand(t, "config", "--config", cfg)
	require.NoError(t, err)

	var out effectiveConfig
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, `/\*\*`, out.Documentation["java"].StartTag)
	assert.Equal(t, "block_comment", out.Documentation["java"].RuleName)
	assert.Equal(t, "comment", out.Documentation["python"].RuleName)
	assert.Equal(t, 256, out.Cache.MaxDocuments)
}
