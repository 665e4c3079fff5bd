package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runKBS(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runKBS(t, binaryPath, home, "profile", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "work")
}

func TestSmokeWrongArityExitsWithUsage(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runKBS(t, binaryPath, home, "work")
	requireExitCode(t, err, 1)
	assert.Contains(t, stderr, "Usage:")
}

func TestSmokeMissingConfigExitsBeforeNetwork(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runKBS(t, binaryPath, home, "work", "https://go.dev/blog/intro-generics")
	requireExitCode(t, err, 1)
	assert.Contains(t, stderr, "invalid configuration")
	assert.Contains(t, stderr, "NOTION_TOKEN")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "kbs-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/kbs")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build kbs binary: %s", string(output))
	return binaryPath
}

func runKBS(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = isolatedEnv(home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// isolatedEnv keeps PATH but drops every credential the binary would read.
func isolatedEnv(home string) []string {
	return []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + filepath.Join(home, ".config"),
		"KBS_CACHE_DIR=" + filepath.Join(home, "cache"),
	}
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	assert.Equal(t, code, exitErr.ExitCode())
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
