package e2e

import (
	"bytes"
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

	stdout, stderr, err := runBB(t, binaryPath, home, "bounty", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Bounty Board")
	assert.Contains(t, stdout, "bounties: 3")
	assert.Contains(t, stdout, "Add batch release to the escrow contract")

	stdout, stderr, err = runBB(t, binaryPath, home, "bounty", "claim", "3", "--connect")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "claimed bounty #3")
	assert.Contains(t, stdout, "worker: 0x71C...9A21")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "bb-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bb")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build bb binary: %s", string(output))
	return binaryPath
}

func runBB(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"BB_CONNECT_DELAY_MS=0",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
