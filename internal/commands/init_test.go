package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "steuerlink-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "steuerlink")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/steuerlink")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runSteuerlink(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runSteuerlink(t, "init", dir, "--name", "Steuern 2024")
	require.NoError(t, err)

	for _, d := range []string{"rates", "declarations", "exports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runSteuerlink(t, "init", dir, "--name", "Steuern 2024")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "steuerlink.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Steuern 2024")
	assert.Contains(t, contents, "canton: ZH")
	assert.Contains(t, contents, "tax_year: 2024")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runSteuerlink(t, "init", dir, "--name", "Steuern 2024")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exports/")
}

func TestInit_RequiresName(t *testing.T) {
	out, err := runSteuerlink(t, "init", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "name")
}
